package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/imoreno/wellscreen/internal/sink"
	"github.com/imoreno/wellscreen/internal/transport/rest"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the questionnaire engine as a JSON API",
		Long: `Serve the questionnaire engine over HTTP for an external UI.

Sessions are held in memory only and disappear when the process
stops. Completed results are submitted to the configured sink once
per session, on the first read of the results endpoint.

Endpoints:
  GET  /health
  GET  /v1/catalog
  POST /v1/sessions
  GET  /v1/sessions/{id}
  POST /v1/sessions/{id}/answer
  POST /v1/sessions/{id}/advance
  POST /v1/sessions/{id}/retreat
  POST /v1/sessions/{id}/reset
  GET  /v1/sessions/{id}/result

Examples:
  wellscreen serve
  wellscreen serve --addr :9090 --profile extended-4
  wellscreen serve --sink-url https://example.com/sink`,
		Args: cobra.NoArgs,
		RunE: serveCommand,
	}

	addEngineFlags(cmd)
	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")

	return cmd
}

// serveCommand implements the serve command logic
func serveCommand(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = eng.cfg.ListenAddr
	}

	dispatcher := sink.NewDispatcher(eng.submitter, eng.log)
	container := &rest.Container{
		Catalog:    eng.catalog,
		Profile:    eng.profile,
		Registry:   rest.NewRegistry(eng.catalog),
		Dispatcher: dispatcher,
		Log:        eng.log,
		UserAgent:  eng.cfg.UserAgent,
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: rest.NewRouter(container),
	}

	errCh := make(chan error, 1)
	go func() {
		eng.log.Infof("serving on %s (profile %s, %d questions)",
			addr, eng.profile.Name, eng.catalog.TotalQuestions())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	eng.log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	// Let any in-flight result submission finish before exiting.
	dispatcher.Wait()
	return nil
}
