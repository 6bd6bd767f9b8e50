package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	barcodegen "github.com/ericlevine/barcodegen"
)

// NewEncodeCmd creates the encode command.
func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode PAYLOAD",
		Short: "Encode one payload",
		Long: `Encode one payload and print it as a data URI, or write the raw SVG or
PNG bytes with --out.

Examples:
  barcodegen encode --symbology ean13 590123412345
  barcodegen encode --symbology code128 "(01)09501101530008(10)ABC123"
  barcodegen encode --symbology qr --format png --out qr.png https://example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEncodeCmd,
	}
	cmd.Flags().StringP("symbology", "s", "qr", "Symbology: qr, ean13, datamatrix or code128")
	cmd.Flags().StringP("format", "f", "", "Output format: svg or png (default depends on symbology)")
	cmd.Flags().StringP("out", "o", "", "Write the image to this file instead of printing a data URI")
	return cmd
}

func runEncodeCmd(cmd *cobra.Command, args []string) error {
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

	g, err := cfg.NewGenerator()
	if err != nil {
		return err
	}
	img, err := g.Encode(s, strings.Join(args, " "), f)
	if err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	logger.Debug("encoded", "symbology", s, "format", img.Format, "width", img.Width, "height", img.Height)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), img.DataURI())
		return err
	}
	return os.WriteFile(out, img.Bytes(), 0o644) //nolint:gosec // images are not secret
}
