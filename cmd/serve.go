package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Rorical/CalcPad/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a calculator session over HTTP",
	Long: `Serve one in-memory calculator session over HTTP.

  GET  /display          current display and state
  POST /press/{button}   press a button
  GET  /buttons          keypad layout
  GET  /metrics          Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := stderrLogger()
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		reg := prometheus.NewRegistry()
		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           server.NewHandler(reg, reg, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving calculator", "addr", serveAddr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			logger.Info("received interrupt signal, shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
