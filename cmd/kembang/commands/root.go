package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kembang/internal/app"
	"kembang/internal/config"
	"kembang/internal/render"
)

var (
	home       string
	passphrase string
	apiURL     string
	noColor    bool

	wire     *app.Wire
	renderer *render.Renderer
)

// Execute runs the CLI with os.Args.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeWire()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kembang",
		Short:         "ASQ-3 developmental screening from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.ResetEnv()
			if home == "" {
				h, err := config.DefaultHome()
				if err != nil {
					return err
				}
				home = h
			}
			if err := config.EnsureHome(home); err != nil {
				return err
			}
			cfg, err := config.Load(home)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if passphrase == "" {
				passphrase = config.Env().Passphrase
			}

			w, err := app.NewWire(app.Config{
				Home:     cfg.Home,
				APIURL:   cfg.APIURL,
				Timeout:  cfg.Timeout,
				LogLevel: cfg.LogLevel,
			})
			if err != nil {
				return err
			}
			wire = w
			renderer = render.New(noColor || !cfg.Color)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeWire()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.kembang)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored token (or KEMBANG_PASSPHRASE)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (overrides config.yaml)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		refreshCmd(),
		childrenCmd(),
		asq3Cmd(),
		screeningCmd(),
		growthCmd(),
		pmtCmd(),
	)
	return root
}

// session opens the stored credentials.
func session() (*app.Session, error) {
	if wire == nil {
		return nil, errors.New("not initialised")
	}
	return wire.Authenticate(passphrase)
}

// closeWire releases the wire. Execute defers it as well since cobra skips
// PersistentPostRunE when a command fails.
func closeWire() error {
	if wire == nil {
		return nil
	}
	err := wire.Close()
	wire = nil
	return err
}
