package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amaumene/whattowatch/internal/app"
	"github.com/amaumene/whattowatch/internal/config"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/notify"
)

// appFactory builds a client app that reports toasts to notifier.
type appFactory func(notifier domain.Notifier) (*app.App, error)

type stubRunner func(ctx context.Context) error

var errNotified = errors.New("request failed")

func loadApp(notifier domain.Notifier) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := app.ConfigureLogger(cfg); err != nil {
		return nil, err
	}
	return app.New(cfg, app.WithNotifier(notifier))
}

func runStub(ctx context.Context) error {
	cfg, err := config.LoadStub()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := app.ConfigureLogger(cfg); err != nil {
		return err
	}
	return app.RunStub(ctx, cfg)
}

func newCLI(newApp appFactory, serveStub stubRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "whattowatch",
		Short: "Browse and curate the What to Watch movie catalog",
		Long: `A command line client for the What to Watch catalog backend.
Set WTW_API_URL to the backend address, or run "whattowatch stub" for a local one.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	r := &runner{newApp: newApp}
	rootCmd.AddCommand(
		r.newFilmsCmd(),
		r.newFilmCmd(),
		r.newPromoCmd(),
		r.newFavoritesCmd(),
		r.newFavoriteCmd(),
		r.newReviewCmd(),
		r.newAddFilmCmd(),
		r.newEditFilmCmd(),
		r.newDeleteFilmCmd(),
		r.newLoginCmd(),
		r.newLogoutCmd(),
		r.newWhoamiCmd(),
		r.newRegisterCmd(),
		newStubCmd(serveStub),
	)

	return rootCmd
}

type runner struct {
	newApp appFactory
}

// run opens the app for one command. Toasts raised while fn runs go to
// stderr and make the command fail.
func (r *runner) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	queue := notify.NewQueue(0)
	a, err := r.newApp(notify.Multi{notify.NewLogNotifier(logger), queue})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(cmd.Context(), a); err != nil {
		return err
	}

	toasts := queue.Drain()
	if len(toasts) == 0 {
		return nil
	}
	messages := make([]string, len(toasts))
	for i, toast := range toasts {
		messages[i] = toast.Message
	}
	return fmt.Errorf("%w: %s", errNotified, strings.Join(messages, "; "))
}

func newStubCmd(serveStub stubRunner) *cobra.Command {
	return &cobra.Command{
		Use:                   "stub",
		Short:                 "Serve a local catalog backend seeded with demo films",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveStub(cmd.Context())
		},
	}
}
