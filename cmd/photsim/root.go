package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-photometry/internal/logger"
	"github.com/cwbudde/algo-photometry/internal/metrics"
)

type globalFlags struct {
	debug     bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "photsim",
		Short:        "Photometric flux simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := logger.Setup(logger.Config{
				Debug:  g.debug,
				Format: g.logFormat,
				Out:    cmd.ErrOrStderr(),
			})
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", logger.FormatText, "log format: text|json")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(airpathCmd())
	cmd.AddCommand(refractionCmd())
	cmd.AddCommand(blackbodyCmd())
	return cmd
}

// serveMetrics exposes the Prometheus handler on addr until the returned
// stop function is called.
func serveMetrics(addr string, log *slog.Logger) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	log.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
