package barcodegen

import "fmt"

// Request is a single encode job.
type Request struct {
	Symbology Symbology    `json:"symbology" yaml:"symbology"`
	Payload   string       `json:"payload" yaml:"payload"`
	Format    OutputFormat `json:"format" yaml:"format"`
}

// Generator is the single entry point from payload to embeddable image. It
// holds only immutable options and is safe for concurrent use.
type Generator struct {
	encode EncodeOptions
	render RenderOptions
}

// Option configures a Generator.
type Option func(*Generator)

// WithEncodeOptions sets the options passed to encoders.
func WithEncodeOptions(o EncodeOptions) Option {
	return func(g *Generator) { g.encode = o }
}

// WithRenderOptions sets the image geometry.
func WithRenderOptions(o RenderOptions) Option {
	return func(g *Generator) { g.render = o }
}

// NewGenerator creates a Generator. Invalid options are reported here
// rather than on every call.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.encode.Validate(); err != nil {
		return nil, err
	}
	if err := g.render.Validate(); err != nil {
		return nil, err
	}
	g.render = g.render.withDefaults()
	return g, nil
}

// Symbol validates payload and encodes it without rendering.
func (g *Generator) Symbol(s Symbology, payload string) (Symbol, error) {
	text, err := ValidateWith(s, payload, &g.encode)
	if err != nil {
		return nil, err
	}
	opts := g.encode
	return EncodeSymbol(s, text, &opts)
}

// Encode validates, encodes and renders payload. FormatDefault selects the
// symbology's default format. Errors from validation and encoding are
// returned unchanged.
func (g *Generator) Encode(s Symbology, payload string, f OutputFormat) (*Image, error) {
	sym, err := g.Symbol(s, payload)
	if err != nil {
		return nil, err
	}
	f = f.Resolve(s)
	vector, err := RenderSVG(sym, NewLayout(s, sym, f, g.render))
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatVector:
		return vector, nil
	case FormatRaster:
		return Rasterize(vector, g.render.Supersample)
	default:
		return nil, fmt.Errorf("%w: output format %s", ErrInvalidOption, f)
	}
}

// EncodeRequest runs Encode for r.
func (g *Generator) EncodeRequest(r Request) (*Image, error) {
	return g.Encode(r.Symbology, r.Payload, r.Format)
}

// Encode is a convenience function that encodes payload with the default
// options.
func Encode(s Symbology, payload string, f OutputFormat) (*Image, error) {
	g, err := NewGenerator()
	if err != nil {
		return nil, err
	}
	return g.Encode(s, payload, f)
}
