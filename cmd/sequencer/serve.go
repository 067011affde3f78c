package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/sequencer/internal/cli"
	"github.com/aretw0/sequencer/internal/metrics"
	httpAdapter "github.com/aretw0/sequencer/pkg/adapters/http"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and JSON API",
	Long:  `Serves the sequence form at / and the JSON API under /api, described by /openapi.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := cli.LoadConfig(runOptions(cmd))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		opts := []httpAdapter.Option{
			httpAdapter.WithDefaults(cfg.Defaults),
			httpAdapter.WithLogger(logger),
		}
		if cfg.Metrics {
			opts = append(opts, httpAdapter.WithMetrics(metrics.New()))
		}
		handler, err := httpAdapter.NewHandler(opts...)
		if err != nil {
			return fmt.Errorf("build handler: %w", err)
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Sequencer server", "address", srv.Addr, "metrics", cfg.Metrics)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("Shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("close server: %w", err)
				}
			}
			logger.Info("Sequencer server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides server.addr)")
}
