package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/store"
)

var testFilms = []dto.FilmDto{
	{ID: "1", Title: "Moonrise Kingdom", Genre: "Comedy"},
	{ID: "2", Title: "Fantastic Mr. Fox", Genre: "Comedy"},
	{ID: "3", Title: "Shutter Island", Genre: "Thriller"},
}

func newFilmService(api *fakeRequester) (*FilmService, *store.Store, *fakeNotifier) {
	st := store.New()
	notifier := &fakeNotifier{}
	return NewFilmService(api, st, notifier), st, notifier
}

func TestFilmService_FetchCollections(t *testing.T) {
	tests := []struct {
		name      string
		route     string
		run       func(context.Context, *FilmService)
		get       func(store.State) store.FilmsData
		message   string
		wantCount int
	}{
		{
			name:      "films",
			route:     "/films",
			run:       func(ctx context.Context, s *FilmService) { s.FetchFilms(ctx) },
			get:       func(st store.State) store.FilmsData { return st.Films },
			message:   "Can't fetch films",
			wantCount: 3,
		},
		{
			name:      "films by genre",
			route:     "/genre/Comedy",
			run:       func(ctx context.Context, s *FilmService) { s.FetchFilmsByGenre(ctx, "Comedy") },
			get:       func(st store.State) store.FilmsData { return st.Genre },
			message:   "Can't fetch films by genre",
			wantCount: 3,
		},
		{
			name:      "genre with spaces is path escaped",
			route:     "/genre/Kids%20&%20Family",
			run:       func(ctx context.Context, s *FilmService) { s.FetchFilmsByGenre(ctx, "Kids & Family") },
			get:       func(st store.State) store.FilmsData { return st.Genre },
			message:   "Can't fetch films by genre",
			wantCount: 3,
		},
		{
			name:      "all genres uses film list",
			route:     "/films",
			run:       func(ctx context.Context, s *FilmService) { s.FetchFilmsByGenre(ctx, DefaultGenre) },
			get:       func(st store.State) store.FilmsData { return st.Genre },
			message:   "Can't fetch films by genre",
			wantCount: 3,
		},
		{
			name:      "similar films",
			route:     "/films",
			run:       func(ctx context.Context, s *FilmService) { s.FetchSimilarFilms(ctx, "1") },
			get:       func(st store.State) store.FilmsData { return st.SimilarFilms },
			message:   "Can't fetch similar films",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" success", func(t *testing.T) {
			api := newFakeRequester().on(http.MethodGet, tt.route, reply{status: http.StatusOK, payload: testFilms})
			svc, st, notifier := newFilmService(api)

			var loadingDuringCall bool
			api.onCall = func(call) { loadingDuringCall = tt.get(st.State()).IsLoading }

			tt.run(context.Background(), svc)

			assert.True(t, loadingDuringCall, "loading flag must be set while the call is in flight")
			assert.False(t, tt.get(st.State()).IsLoading)
			assert.Len(t, tt.get(st.State()).Films, tt.wantCount)
			assert.Empty(t, notifier.messages)
		})

		t.Run(tt.name+" failure", func(t *testing.T) {
			api := newFakeRequester().on(http.MethodGet, tt.route, reply{err: errBackend})
			svc, st, notifier := newFilmService(api)
			st.Dispatch(store.SetFilms{NameSpace: store.NameSpaceFilms, Films: []domain.Film{{ID: "stale"}}})
			st.Dispatch(store.SetFilms{NameSpace: store.NameSpaceGenre, Films: []domain.Film{{ID: "stale"}}})
			st.Dispatch(store.SetFilms{NameSpace: store.NameSpaceSimilarFilms, Films: []domain.Film{{ID: "stale"}}})

			tt.run(context.Background(), svc)

			assert.Empty(t, tt.get(st.State()).Films)
			assert.False(t, tt.get(st.State()).IsLoading)
			assert.Equal(t, []string{tt.message}, notifier.messages)
		})
	}
}

func TestFilmService_FetchFilms_ActionOrder(t *testing.T) {
	api := newFakeRequester().on(http.MethodGet, "/films", reply{status: http.StatusOK, payload: testFilms})
	svc, st, _ := newFilmService(api)
	actions := recordActions(st)

	svc.FetchFilms(context.Background())

	assert.Equal(t, []string{"FILMS/setLoading", "FILMS/setFilms", "FILMS/setLoading"}, actions())
}

func TestSimilarTo(t *testing.T) {
	films := []domain.Film{
		{ID: "1", Genre: "Drama"},
		{ID: "2", Genre: "Drama"},
		{ID: "3", Genre: "Crime"},
	}

	assert.Equal(t, []domain.Film{{ID: "2", Genre: "Drama"}}, similarTo("1", films))
	assert.Empty(t, similarTo("3", films))
	assert.Empty(t, similarTo("missing", films))
}

func TestFilmService_FetchSingle(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		run     func(context.Context, *FilmService)
		get     func(store.State) store.FilmData
		message string
	}{
		{
			name:    "film",
			route:   "/films/3",
			run:     func(ctx context.Context, s *FilmService) { s.FetchFilm(ctx, "3") },
			get:     func(st store.State) store.FilmData { return st.Film },
			message: "Can't fetch film",
		},
		{
			name:    "promo",
			route:   "/promo",
			run:     func(ctx context.Context, s *FilmService) { s.FetchPromo(ctx) },
			get:     func(st store.State) store.FilmData { return st.Promo },
			message: "Can't fetch promo film",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" success", func(t *testing.T) {
			api := newFakeRequester().on(http.MethodGet, tt.route, reply{status: http.StatusOK, payload: testFilms[2]})
			svc, st, notifier := newFilmService(api)

			var loadingDuringCall bool
			api.onCall = func(call) { loadingDuringCall = tt.get(st.State()).IsLoading }

			tt.run(context.Background(), svc)

			assert.True(t, loadingDuringCall)
			slot := tt.get(st.State())
			require.NotNil(t, slot.Film)
			assert.Equal(t, "Shutter Island", slot.Film.Name)
			assert.False(t, slot.IsLoading)
			assert.Empty(t, notifier.messages)
		})

		t.Run(tt.name+" failure", func(t *testing.T) {
			api := newFakeRequester().on(http.MethodGet, tt.route, reply{err: errBackend})
			svc, st, notifier := newFilmService(api)
			st.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpaceFilm, Film: &domain.Film{ID: "stale"}})
			st.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpacePromo, Film: &domain.Film{ID: "stale"}})

			tt.run(context.Background(), svc)

			assert.Nil(t, tt.get(st.State()).Film)
			assert.False(t, tt.get(st.State()).IsLoading)
			assert.Equal(t, []string{tt.message}, notifier.messages)
		})
	}
}

func TestFilmService_AddFilm(t *testing.T) {
	poster := &domain.Upload{Filename: "poster.jpg", Content: []byte("p")}
	background := &domain.Upload{Filename: "bg.jpg", Content: []byte("b")}
	newFilm := &domain.NewFilm{Name: "Aviator", Genre: "Drama", PosterImage: poster, BackgroundImage: background}

	tests := []struct {
		name       string
		api        *fakeRequester
		wantErr    bool
		wantCalls  []string
		wantActive bool
	}{
		{
			name: "created with images",
			api: newFakeRequester().
				on(http.MethodPost, "/films/create", reply{status: http.StatusCreated, payload: dto.FilmDto{ID: "9", Title: "Aviator"}}).
				on(http.MethodPost, "/films/9/image/poster", reply{status: http.StatusCreated, payload: dto.FilmDto{ID: "9", Title: "Aviator", PosterImage: "/p.jpg"}}).
				on(http.MethodPost, "/films/9/image/background", reply{status: http.StatusCreated, payload: dto.FilmDto{ID: "9", Title: "Aviator", PosterImage: "/p.jpg", BackgroundImage: "/b.jpg"}}),
			wantCalls:  []string{"POST /films/create", "POST /films/9/image/poster", "POST /films/9/image/background"},
			wantActive: true,
		},
		{
			name: "accepted without created status skips uploads",
			api: newFakeRequester().
				on(http.MethodPost, "/films/create", reply{status: http.StatusOK, payload: dto.FilmDto{ID: "9", Title: "Aviator"}}),
			wantCalls:  []string{"POST /films/create"},
			wantActive: true,
		},
		{
			name: "create rejected",
			api: newFakeRequester().
				on(http.MethodPost, "/films/create", reply{status: http.StatusBadRequest, err: errBackend}),
			wantErr:   true,
			wantCalls: []string{"POST /films/create"},
		},
		{
			name: "poster upload fails",
			api: newFakeRequester().
				on(http.MethodPost, "/films/create", reply{status: http.StatusCreated, payload: dto.FilmDto{ID: "9"}}).
				on(http.MethodPost, "/films/9/image/poster", reply{status: http.StatusInternalServerError, err: errBackend}),
			wantErr:   true,
			wantCalls: []string{"POST /films/create", "POST /films/9/image/poster"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, notifier := newFilmService(tt.api)

			err := svc.AddFilm(context.Background(), newFilm)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAddFilm)
				assert.ErrorIs(t, err, errBackend)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, tt.api.paths())
			assert.Equal(t, tt.wantActive, st.State().Film.Film != nil)
			assert.Empty(t, notifier.messages)
		})
	}
}

func TestFilmService_AddFilm_CreatedWithoutID(t *testing.T) {
	api := newFakeRequester().
		on(http.MethodPost, "/films/create", reply{status: http.StatusCreated, payload: dto.FilmDto{Title: "Aviator"}})
	svc, st, _ := newFilmService(api)

	err := svc.AddFilm(context.Background(), &domain.NewFilm{Name: "Aviator", PosterImage: &domain.Upload{Filename: "p.jpg"}})

	assert.ErrorIs(t, err, ErrAddFilm)
	assert.ErrorIs(t, err, errMissingFilmID)
	assert.Equal(t, []string{"POST /films/create"}, api.paths())
	assert.Nil(t, st.State().Film.Film)
}

func TestFilmService_AddFilm_StoresFilmAfterUploads(t *testing.T) {
	api := newFakeRequester().
		on(http.MethodPost, "/films/create", reply{status: http.StatusCreated, payload: dto.FilmDto{ID: "9"}}).
		on(http.MethodPost, "/films/9/image/poster", reply{status: http.StatusCreated, payload: dto.FilmDto{ID: "9", PosterImage: "/p.jpg"}})
	svc, st, _ := newFilmService(api)

	err := svc.AddFilm(context.Background(), &domain.NewFilm{PosterImage: &domain.Upload{Filename: "p.jpg"}})

	require.NoError(t, err)
	assert.Equal(t, "/p.jpg", st.State().Film.Film.PosterImage)
	assert.Equal(t, "image", api.calls[1].file.Field)
}

func TestFilmService_EditFilm(t *testing.T) {
	film := domain.Film{ID: "4", Name: "Pulp Fiction"}

	t.Run("updated with poster", func(t *testing.T) {
		api := newFakeRequester().
			on(http.MethodPatch, "/films/4", reply{status: http.StatusOK, payload: dto.FilmDto{ID: "4", Title: "Pulp Fiction"}}).
			on(http.MethodPost, "/films/4/image/poster", reply{status: http.StatusCreated})
		svc, st, _ := newFilmService(api)

		err := svc.EditFilm(context.Background(), &domain.FilmEdit{Film: film, PosterImage: &domain.Upload{Filename: "p.jpg"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"PATCH /films/4", "POST /films/4/image/poster"}, api.paths())
		assert.Equal(t, "Pulp Fiction", st.State().Film.Film.Name)
	})

	t.Run("non OK status skips uploads", func(t *testing.T) {
		api := newFakeRequester().
			on(http.MethodPatch, "/films/4", reply{status: http.StatusAccepted, payload: dto.FilmDto{ID: "4"}})
		svc, _, _ := newFilmService(api)

		err := svc.EditFilm(context.Background(), &domain.FilmEdit{
			Film:            film,
			PosterImage:     &domain.Upload{Filename: "p.jpg"},
			BackgroundImage: &domain.Upload{Filename: "b.jpg"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"PATCH /films/4"}, api.paths())
	})

	t.Run("rejected", func(t *testing.T) {
		api := newFakeRequester().on(http.MethodPatch, "/films/4", reply{status: http.StatusForbidden, err: errBackend})
		svc, st, _ := newFilmService(api)

		err := svc.EditFilm(context.Background(), &domain.FilmEdit{Film: film})

		assert.True(t, errors.Is(err, ErrEditFilm))
		assert.Nil(t, st.State().Film.Film)
	})
}

func TestFilmService_DeleteFilm(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		api := newFakeRequester().on(http.MethodDelete, "/films/4", reply{status: http.StatusNoContent})
		svc, st, _ := newFilmService(api)
		st.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpaceFilm, Film: &domain.Film{ID: "4"}})

		require.NoError(t, svc.DeleteFilm(context.Background(), "4"))
		assert.Nil(t, st.State().Film.Film)
	})

	t.Run("rejected", func(t *testing.T) {
		api := newFakeRequester().on(http.MethodDelete, "/films/4", reply{status: http.StatusUnauthorized, err: errBackend})
		svc, st, _ := newFilmService(api)
		st.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpaceFilm, Film: &domain.Film{ID: "4"}})

		assert.ErrorIs(t, svc.DeleteFilm(context.Background(), "4"), ErrDeleteFilm)
		assert.NotNil(t, st.State().Film.Film)
	})
}
