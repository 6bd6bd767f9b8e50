package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	barcodegen "github.com/ericlevine/barcodegen"
)

// Encoder encodes one request. *barcodegen.Generator implements it.
type Encoder interface {
	EncodeRequest(r barcodegen.Request) (*barcodegen.Image, error)
}

// Result is the outcome of one request.
type Result struct {
	Index   int
	Request barcodegen.Request
	Image   *barcodegen.Image
	Err     error
}

// OK reports whether the item was encoded.
func (r Result) OK() bool { return r.Err == nil && r.Image != nil }

// Processor encodes batches of requests with bounded concurrency.
type Processor struct {
	encoder     Encoder
	concurrency int
	logger      *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the number of requests encoded at once. Values
// below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger for batch progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor. Concurrency defaults to the number of
// CPUs.
func NewProcessor(encoder Encoder, opts ...Option) *Processor {
	p := &Processor{
		encoder:     encoder,
		concurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Process encodes reqs and returns one Result per request in input order.
// A failed item never stops the others. When ctx is cancelled, items not
// yet started fail with the context error, which is also returned.
func (p *Processor) Process(ctx context.Context, reqs []barcodegen.Request) ([]Result, error) {
	p.logger.Info("starting batch", "items", len(reqs), "concurrency", p.concurrency)
	start := time.Now()

	results := make([]Result, len(reqs))
	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i, req := range reqs {
		results[i] = Result{Index: i, Request: req}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			img, err := p.encoder.EncodeRequest(req)
			if err != nil {
				p.logger.Warn("item failed",
					"index", i,
					"symbology", req.Symbology,
					"kind", barcodegen.ErrorKind(err),
					"error", err,
				)
				results[i].Err = err
				return nil
			}
			p.logger.Debug("item encoded", "index", i, "symbology", req.Symbology, "bytes", img.Len())
			results[i].Image = img
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // items record their own errors

	s := Summarize(results)
	p.logger.Info("batch complete",
		"items", s.Total,
		"failed", s.Failed,
		"elapsed", time.Since(start),
	)
	return results, ctx.Err()
}

// Summary counts batch outcomes.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	// Kinds counts failures by error kind.
	Kinds map[string]int
}

// Summarize counts the outcomes in results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Kinds: map[string]int{}}
	for _, r := range results {
		if r.OK() {
			s.Succeeded++
			continue
		}
		s.Failed++
		s.Kinds[barcodegen.ErrorKind(r.Err)]++
	}
	return s
}

// ReadRequests reads one payload per line from r. Blank lines become
// requests too, so they are reported rather than silently skipped.
func ReadRequests(r io.Reader, s barcodegen.Symbology, f barcodegen.OutputFormat) ([]barcodegen.Request, error) {
	var reqs []barcodegen.Request
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		reqs = append(reqs, barcodegen.Request{Symbology: s, Payload: sc.Text(), Format: f})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading payloads: %w", err)
	}
	return reqs, nil
}

// FileName returns the output file name of a successful result, e.g.
// "0007.png".
func FileName(r Result) string {
	ext := "svg"
	if r.Image != nil && r.Image.Format == barcodegen.FormatRaster {
		ext = "png"
	}
	return fmt.Sprintf("%04d.%s", r.Index, ext)
}
