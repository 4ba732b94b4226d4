package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/qrgen/internal/config"
	"github.com/deppfellow/qrgen/internal/handler"
	"github.com/deppfellow/qrgen/internal/logger"
	"github.com/deppfellow/qrgen/internal/qr"
	"github.com/deppfellow/qrgen/internal/router"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/deppfellow/qrgen/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service (foreground)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return err
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv := server.New(cfg, &log, loggerService)
	services := service.NewServices(srv, qr.NewSVGEncoder())
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			loggerService.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
