package app

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"

	"github.com/amaumene/whattowatch/internal/clients"
	"github.com/amaumene/whattowatch/internal/config"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/notify"
	"github.com/amaumene/whattowatch/internal/service"
	"github.com/amaumene/whattowatch/internal/storage"
	"github.com/amaumene/whattowatch/internal/store"
)

type App struct {
	cfg   *config.Config
	db    *bolthold.Store
	store *store.Store

	Films     *service.FilmService
	Reviews   *service.ReviewService
	Favorites *service.FavoriteService
	Users     *service.UserService
}

type options struct {
	httpClient *http.Client
	notifier   domain.Notifier
}

type Option func(*options)

// WithHTTPClient replaces the default client built from the configured
// timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func WithNotifier(notifier domain.Notifier) Option {
	return func(o *options) {
		o.notifier = notifier
	}
}

func New(cfg *config.Config, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = notify.NewLogNotifier(log.StandardLogger())
	}

	db, err := openStore(cfg.DBPath(), cfg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	app := &App{
		cfg:   cfg,
		db:    db,
		store: store.New(),
	}

	if err := app.wireServices(&o); err != nil {
		db.Close()
		return nil, fmt.Errorf("wiring services: %w", err)
	}

	return app, nil
}

func openStore(path string, cfg *config.Config) (*bolthold.Store, error) {
	db, err := bolthold.Open(path, cfg.DBFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func (a *App) wireServices(o *options) error {
	tokens := storage.NewTokenRepository(a.db)

	api, err := clients.NewAPIClient(&clients.Config{
		BaseURL: a.cfg.APIURL,
		Timeout: a.cfg.HTTPTimeout,
		Client:  o.httpClient,
		Tokens:  tokens,
	})
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}

	a.Films = service.NewFilmService(api, a.store, o.notifier)
	a.Reviews = service.NewReviewService(api, a.store, o.notifier)
	a.Favorites = service.NewFavoriteService(api, a.store, o.notifier)
	a.Users = service.NewUserService(api, a.store, o.notifier, tokens)
	return nil
}

func (a *App) Store() *store.Store {
	return a.store
}

func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		log.WithFields(log.Fields{
			"component": "database",
			"error":     err,
		}).Error("database connection close failed")
		return err
	}
	return nil
}

// ConfigureLogger applies the configured level and format to the standard
// logrus logger.
func ConfigureLogger(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
