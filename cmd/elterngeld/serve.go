package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/elterngeld/calculator/internal/api"
	"github.com/elterngeld/calculator/internal/config"
)

func newServeCmd() *cobra.Command {
	var (
		port    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator HTTP API",
		Long: `Serves the calculator as a JSON API for browser widgets.

Settings are read from the environment (PORT, ELTERNGELD_INCOME_CEILING,
ELTERNGELD_MAX_VISIBLE_MONTHS, ELTERNGELD_INITIAL_VISIBLE_MONTHS,
CORS_ALLOWED_ORIGINS, LOG_LEVEL) and an optional .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			logger := newLogger(cfg.LogLevel)
			slog.SetDefault(logger)

			router := api.NewRouter(api.NewHandler(cfg, logger), cfg.AllowedOrigins)
			server := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "addr", server.Addr, "income_ceiling", cfg.IncomeCeiling.String())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional .env file")
	return cmd
}
