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

	"github.com/spf13/cobra"

	"kembang/internal/devserver"
	"kembang/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr     string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "devbackend",
		Short:        "In-memory screening backend for local development",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log := logging.New(os.Stderr, "devbackend", level)

			srv := &http.Server{
				Addr:              addr,
				Handler:           devserver.New(log).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdown)
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "devbackend listening on http://%s/api/v1\n", addr)
			fmt.Fprintf(cmd.OutOrStdout(), "demo login: %s / %s\n", devserver.DemoEmail, devserver.DemoPassword)
			log.Info("listening", map[string]any{"addr": addr})

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("serve_failed", nil, err)
				return err
			}
			log.Info("stopped", nil)
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}
