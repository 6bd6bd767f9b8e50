package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodegen/internal/batch"
	"github.com/ericlevine/barcodegen/internal/config"
	"github.com/ericlevine/barcodegen/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve barcode generation over HTTP",
		Long: `Serve GET /health, POST /encode and POST /batch until interrupted.

Example:
  curl -d '{"symbology":"ean13","payload":"590123412345"}' localhost:3333/encode`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}
	cmd.Flags().StringP("addr", "a", config.DefaultAddr, "Listen address")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of batch jobs encoded at once")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)

	g, err := cfg.NewGenerator()
	if err != nil {
		return err
	}
	p := batch.NewProcessor(g, batch.WithConcurrency(cfg.Batch.Concurrency), batch.WithLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(g, p, logger).ListenAndServe(ctx, cfg.Server.Addr)
}
