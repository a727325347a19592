package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/amaumene/whattowatch/internal/config"
	"github.com/amaumene/whattowatch/internal/stub"
)

// RunStub serves the stub backend until ctx is cancelled or the process
// receives an interrupt. An empty database is seeded with demo films.
func RunStub(ctx context.Context, cfg *config.Config) error {
	db, err := openStore(cfg.StubDBPath(), cfg)
	if err != nil {
		return fmt.Errorf("opening stub store: %w", err)
	}
	defer db.Close()

	server := stub.New(db)
	empty, err := server.Empty()
	if err != nil {
		return err
	}
	if empty {
		if err := server.Seed(stub.DemoFilms()); err != nil {
			return err
		}
		log.WithField("component", "stub").Info("seeded demo films")
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Listen(cfg.StubAddr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("stub backend stopped: %w", err)
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	if err := server.Shutdown(); err != nil {
		log.WithFields(log.Fields{
			"component": "stub",
			"error":     err,
		}).Error("stub backend shutdown failed")
		return err
	}
	return nil
}
