package service

import (
	"context"
	"fmt"

	"github.com/amaumene/whattowatch/internal/adapter"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/store"
)

const setFavoriteMessage = "Can't add to or remove from MyList"

type FavoriteService struct {
	dispatcher
}

func NewFavoriteService(api domain.Requester, st *store.Store, notifier domain.Notifier) *FavoriteService {
	return &FavoriteService{dispatcher: newDispatcher(api, st, notifier)}
}

func (s *FavoriteService) FetchFavoriteFilms(ctx context.Context) {
	s.fetchFilms(ctx, filmsFetch{
		nameSpace: store.NameSpaceFavoriteFilms,
		route:     routeFavorite,
		operation: "fetch_favorite_films",
		message:   "Can't fetch favorite films",
	})
}

// SetFavorite adds film id to, or removes it from, the user's list and
// stores the film returned by the backend.
func (s *FavoriteService) SetFavorite(ctx context.Context, id string, status domain.FavoriteStatus) {
	var (
		payload dto.FilmDto
		err     error
	)

	switch status {
	case domain.FavoriteAdd:
		_, err = s.api.Post(ctx, favoriteRoute(id), nil, &payload)
	case domain.FavoriteRemove:
		_, err = s.api.Delete(ctx, favoriteRoute(id), &payload)
	default:
		err = fmt.Errorf("favorite status %d: %w", status, domain.ErrInvalidInput)
	}
	if err != nil {
		s.report("set_favorite", setFavoriteMessage, err)
		return
	}

	s.store.Dispatch(store.SetFilm{Film: adapter.FilmToClient(&payload)})
}
