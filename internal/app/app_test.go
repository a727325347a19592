package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timshannon/bolthold"

	"github.com/amaumene/whattowatch/internal/config"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/notify"
	"github.com/amaumene/whattowatch/internal/stub"
)

type testEnv struct {
	cfg      *config.Config
	backend  *stub.Server
	notifier *notify.Recorder
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := bolthold.Open(filepath.Join(t.TempDir(), "stub.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	backend := stub.New(db)
	require.NoError(t, backend.Seed(stub.DemoFilms()))

	return &testEnv{
		cfg: &config.Config{
			APIURL:            "http://catalog.test",
			DataDir:           t.TempDir(),
			HTTPTimeout:       time.Second,
			DBFilePermissions: 0600,
		},
		backend:  backend,
		notifier: &notify.Recorder{},
	}
}

func (e *testEnv) newApp(t *testing.T) *App {
	t.Helper()

	app, err := New(e.cfg, WithHTTPClient(e.backend.HTTPClient()), WithNotifier(e.notifier))
	require.NoError(t, err)
	return app
}

func TestApp_LoadMainPage(t *testing.T) {
	env := setupTestEnv(t)
	app := env.newApp(t)
	defer app.Close()

	require.NoError(t, app.LoadMainPage(context.Background()))

	state := app.Store().State()
	assert.Len(t, state.Films.Films, 4)
	assert.False(t, state.Films.IsLoading)
	require.NotNil(t, state.Promo.Film)
	assert.Equal(t, "The Grand Budapest Hotel", state.Promo.Film.Name)
	assert.Equal(t, domain.NoAuth, state.User.AuthorizationStatus)
	assert.Nil(t, state.User.User)
	assert.Empty(t, env.notifier.Messages())
}

func TestApp_LoadFilmPage(t *testing.T) {
	env := setupTestEnv(t)
	app := env.newApp(t)
	defer app.Close()

	require.NoError(t, app.LoadFilmPage(context.Background(), "1"))

	state := app.Store().State()
	require.NotNil(t, state.Film.Film)
	assert.Equal(t, "1", state.Film.Film.ID)
	require.Len(t, state.SimilarFilms.Films, 1)
	assert.Equal(t, "Moonrise Kingdom", state.SimilarFilms.Films[0].Name)
	assert.Empty(t, state.Reviews.Reviews)
	assert.Empty(t, env.notifier.Messages())
}

func TestApp_FetchFilmsByGenre_Escaped(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, env.backend.Seed([]dto.FilmDto{{ID: "5", Title: "Paddington", Genre: "Kids & Family"}}))
	app := env.newApp(t)
	defer app.Close()

	app.Films.FetchFilmsByGenre(context.Background(), "Kids & Family")

	films := app.Store().State().Genre.Films
	require.Len(t, films, 1)
	assert.Equal(t, "Paddington", films[0].Name)
	assert.Empty(t, env.notifier.Messages())
}

func TestApp_LoadFilmPage_Cancelled(t *testing.T) {
	env := setupTestEnv(t)
	app := env.newApp(t)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.LoadFilmPage(ctx, "1")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Session(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	app := env.newApp(t)
	require.NoError(t, app.Users.RegisterUser(ctx, &domain.NewUser{
		Email:    "kate@example.com",
		Name:     "Kate",
		Password: "secret",
		Avatar:   &domain.Upload{Filename: "kate.png", Content: []byte("png")},
	}))

	app.Users.Login(ctx, &domain.AuthData{Email: "kate@example.com", Password: "secret"})
	state := app.Store().State()
	require.Equal(t, domain.Auth, state.User.AuthorizationStatus)
	assert.Equal(t, "Kate", state.User.User.Name)
	assert.Contains(t, state.User.User.AvatarURL, "kate.png")
	require.NoError(t, app.Close())

	// The token survives a restart.
	app = env.newApp(t)
	defer app.Close()

	app.Users.CheckAuth(ctx)
	assert.Equal(t, domain.Auth, app.Store().State().User.AuthorizationStatus)

	app.Favorites.SetFavorite(ctx, "2", domain.FavoriteAdd)
	app.Favorites.FetchFavoriteFilms(ctx)
	favorites := app.Store().State().FavoriteFilms.Films
	require.Len(t, favorites, 1)
	assert.True(t, favorites[0].IsFavorite)

	require.NoError(t, app.Reviews.PostReview(ctx, "2", &domain.NewReview{Text: "A fine little film.", Rating: 8}))
	app.Reviews.FetchReviews(ctx, "2")
	assert.Len(t, app.Store().State().Reviews.Reviews, 1)

	app.Users.Logout(ctx)
	state = app.Store().State()
	assert.Equal(t, domain.NoAuth, state.User.AuthorizationStatus)
	assert.Nil(t, state.User.User)

	app.Favorites.FetchFavoriteFilms(ctx)
	assert.Empty(t, app.Store().State().FavoriteFilms.Films)
	assert.Len(t, env.notifier.Messages(), 1)
}

func TestApp_RejectedLogin(t *testing.T) {
	env := setupTestEnv(t)
	app := env.newApp(t)
	defer app.Close()

	app.Users.Login(context.Background(), &domain.AuthData{Email: "nobody@example.com", Password: "nope"})

	assert.Equal(t, domain.AuthUnknown, app.Store().State().User.AuthorizationStatus)
	assert.Equal(t, []string{"Can't login"}, env.notifier.Messages())
}

func TestNew_MissingAPIURL(t *testing.T) {
	env := setupTestEnv(t)
	env.cfg.APIURL = ""

	app, err := New(env.cfg)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestConfigureLogger(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	tests := []struct {
		name      string
		cfg       *config.Config
		wantLevel log.Level
		wantJSON  bool
		wantErr   bool
	}{
		{name: "text debug", cfg: &config.Config{LogLevel: "debug", LogFormat: "text"}, wantLevel: log.DebugLevel},
		{name: "json warn", cfg: &config.Config{LogLevel: "warn", LogFormat: "json"}, wantLevel: log.WarnLevel, wantJSON: true},
		{name: "bad level", cfg: &config.Config{LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfigureLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, log.GetLevel())
			_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}
