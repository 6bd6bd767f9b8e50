package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodegen/internal/config"

	// Register all symbology encoders.
	_ "github.com/ericlevine/barcodegen/datamatrix"
	_ "github.com/ericlevine/barcodegen/oned"
	_ "github.com/ericlevine/barcodegen/qrcode"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barcodegen",
		Short: "Generate QR, EAN-13, DataMatrix and Code 128 barcodes",
		Long: `barcodegen turns text payloads into barcode images as SVG or PNG,
printed as data URIs or written to files.

Configuration is read from --config, ./.barcodegen.yaml or
$XDG_CONFIG_HOME/barcodegen/config.yaml. Flags override the file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.StringP("config", "c", "", "Path to a YAML configuration file")
	f.Int("module-size", 0, "Pixel size of one QR or DataMatrix module")
	f.Int("ean-unit", 0, "Pixel width of one EAN-13 bar unit")
	f.Int("xdim", 0, "Pixel width of one Code 128 bar unit in PNG output")
	f.Int("bar-height", 0, "Code 128 bar height in pixels in PNG output")
	f.Int("supersample", 0, "Rasterization oversampling factor")
	f.Int("min-quiet-zone", 0, "Minimum quiet zone in modules or bar units")
	f.String("ec", "", "QR error correction level: L, M, Q or H")
	f.String("shape", "", "DataMatrix shape: square, rectangle or any")
	f.Bool("fold", false, "Fold Unicode compatibility characters to ASCII")

	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewBatchCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies the flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	ints := map[string]*int{
		"module-size":    &cfg.Render.ModuleSize,
		"ean-unit":       &cfg.Render.EANUnit,
		"xdim":           &cfg.Render.XDim,
		"bar-height":     &cfg.Render.BarHeight,
		"supersample":    &cfg.Render.Supersample,
		"min-quiet-zone": &cfg.Render.MinQuietZone,
	}
	for name, dst := range ints {
		if flags.Changed(name) {
			if *dst, err = flags.GetInt(name); err != nil {
				return nil, err
			}
		}
	}
	if flags.Changed("ec") {
		cfg.QR.ErrorCorrection, _ = flags.GetString("ec")
	}
	if flags.Changed("shape") {
		cfg.DataMatrix.Shape, _ = flags.GetString("shape")
	}
	if flags.Changed("fold") {
		cfg.Unicode.FoldCompatibility, _ = flags.GetBool("fold")
	}
	if flags.Lookup("concurrency") != nil && flags.Changed("concurrency") {
		cfg.Batch.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger returns a text logger on stderr. Verbose output includes
// debug messages.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
