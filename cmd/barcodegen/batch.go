package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	barcodegen "github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/batch"
)

// errBatchFailed is returned when at least one item could not be encoded.
var errBatchFailed = errors.New("some items failed")

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE|-",
		Short: "Encode one payload per line",
		Long: `Encode every line of FILE (or standard input for "-") and write
NNNN.svg or NNNN.png files into --out-dir. Blank lines are reported as
failed items.

Examples:
  barcodegen batch --symbology ean13 --out-dir labels products.txt
  cat urls.txt | barcodegen batch --format png --report report.md -`,
		Args: cobra.ExactArgs(1),
		RunE: runBatchCmd,
	}
	cmd.Flags().StringP("symbology", "s", "qr", "Symbology: qr, ean13, datamatrix or code128")
	cmd.Flags().StringP("format", "f", "", "Output format: svg or png (default depends on symbology)")
	cmd.Flags().StringP("out-dir", "o", ".", "Directory for the generated images")
	cmd.Flags().StringP("report", "r", "", "Write a Markdown report to this file (\"-\" for stdout)")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of payloads encoded at once")
	return cmd
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)

	symName, _ := cmd.Flags().GetString("symbology")
	s, err := barcodegen.ParseSymbology(symName)
	if err != nil {
		return err
	}
	formatName, _ := cmd.Flags().GetString("format")
	f, err := barcodegen.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	reqs, err := batch.ReadRequests(in, s, f)
	if err != nil {
		return err
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := batch.NewProcessor(g, batch.WithConcurrency(cfg.Batch.Concurrency), batch.WithLogger(logger))
	results, err := p.Process(ctx, reqs)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	if err := writeImages(outDir, results); err != nil {
		return err
	}
	if err := writeReport(cmd, results); err != nil {
		return err
	}

	summary := batch.Summarize(results)
	fmt.Fprintf(cmd.ErrOrStderr(), "%d encoded, %d failed\n", summary.Succeeded, summary.Failed)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errBatchFailed, summary.Failed, summary.Total)
	}
	return nil
}

func writeImages(dir string, results []batch.Result) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, batch.FileName(r)), r.Image.Bytes(), 0o644); err != nil { //nolint:gosec // images are not secret
			return err
		}
	}
	return nil
}

func writeReport(cmd *cobra.Command, results []batch.Result) error {
	path, _ := cmd.Flags().GetString("report")
	switch path {
	case "":
		return nil
	case "-":
		return batch.WriteMarkdownReport(cmd.OutOrStdout(), results)
	}
	file, err := os.Create(path) //nolint:gosec // user-provided report path
	if err != nil {
		return err
	}
	if err := batch.WriteMarkdownReport(file, results); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
