package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/amaumene/whattowatch/internal/adapter"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/store"
)

var errMissingFilmID = errors.New("create response carried no film id")

type FilmService struct {
	dispatcher
}

func NewFilmService(api domain.Requester, st *store.Store, notifier domain.Notifier) *FilmService {
	return &FilmService{dispatcher: newDispatcher(api, st, notifier)}
}

func (s *FilmService) FetchFilms(ctx context.Context) {
	s.fetchFilms(ctx, filmsFetch{
		nameSpace: store.NameSpaceFilms,
		route:     routeFilms,
		operation: "fetch_films",
		message:   "Can't fetch films",
	})
}

func (s *FilmService) FetchFilmsByGenre(ctx context.Context, genre string) {
	s.fetchFilms(ctx, filmsFetch{
		nameSpace: store.NameSpaceGenre,
		route:     genreRoute(genre),
		operation: "fetch_films_by_genre",
		message:   "Can't fetch films by genre",
	})
}

// FetchSimilarFilms loads films sharing the genre of film id, excluding
// the film itself.
func (s *FilmService) FetchSimilarFilms(ctx context.Context, id string) {
	s.fetchFilms(ctx, filmsFetch{
		nameSpace: store.NameSpaceSimilarFilms,
		route:     routeFilms,
		operation: "fetch_similar_films",
		message:   "Can't fetch similar films",
		filter: func(films []domain.Film) []domain.Film {
			return similarTo(id, films)
		},
	})
}

func similarTo(id string, films []domain.Film) []domain.Film {
	genre, found := "", false
	for _, film := range films {
		if film.ID == id {
			genre, found = film.Genre, true
			break
		}
	}

	similar := make([]domain.Film, 0, len(films))
	if !found {
		return similar
	}
	for _, film := range films {
		if film.ID != id && film.Genre == genre {
			similar = append(similar, film)
		}
	}
	return similar
}

func (s *FilmService) FetchFilm(ctx context.Context, id string) {
	s.fetchFilm(ctx, filmFetch{
		nameSpace: store.NameSpaceFilm,
		route:     filmRoute(id),
		operation: "fetch_film",
		message:   "Can't fetch film",
	})
}

func (s *FilmService) FetchPromo(ctx context.Context) {
	s.fetchFilm(ctx, filmFetch{
		nameSpace: store.NameSpacePromo,
		route:     routePromo,
		operation: "fetch_promo",
		message:   "Can't fetch promo film",
	})
}

// AddFilm creates a film and, once the backend reports it created, uploads
// its poster and background. A failed upload leaves the film created.
func (s *FilmService) AddFilm(ctx context.Context, film *domain.NewFilm) error {
	var created dto.FilmDto
	status, err := s.api.Post(ctx, routeAdd, adapter.CreateFilmToServer(film), &created)
	if err != nil {
		return s.fail("add_film", ErrAddFilm, err)
	}

	if status == http.StatusCreated {
		if created.ID == "" {
			return s.fail("add_film", ErrAddFilm, errMissingFilmID)
		}
		if err := s.uploadImages(ctx, created.ID, film.PosterImage, film.BackgroundImage, &created); err != nil {
			return s.fail("add_film", ErrAddFilm, err)
		}
	}

	active := adapter.FilmToClient(&created)
	s.store.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpaceFilm, Film: &active})
	return nil
}

// EditFilm updates a film and, once the backend accepts the update,
// uploads replacement images.
func (s *FilmService) EditFilm(ctx context.Context, edit *domain.FilmEdit) error {
	var updated dto.FilmDto
	status, err := s.api.Patch(ctx, filmRoute(edit.Film.ID), adapter.UpdateFilmToServer(&edit.Film), &updated)
	if err != nil {
		return s.fail("edit_film", ErrEditFilm, err)
	}

	if status == http.StatusOK {
		if err := s.uploadImages(ctx, edit.Film.ID, edit.PosterImage, edit.BackgroundImage, &updated); err != nil {
			return s.fail("edit_film", ErrEditFilm, err)
		}
	}

	active := adapter.FilmToClient(&updated)
	s.store.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpaceFilm, Film: &active})
	return nil
}

func (s *FilmService) DeleteFilm(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, filmRoute(id), nil); err != nil {
		return s.fail("delete_film", ErrDeleteFilm, err)
	}

	s.store.Dispatch(store.SetActiveFilm{NameSpace: store.NameSpaceFilm, Film: nil})
	return nil
}

// uploadImages sends poster then background; out receives the film as
// returned by the last upload.
func (s *FilmService) uploadImages(ctx context.Context, id string, poster, background *domain.Upload, out *dto.FilmDto) error {
	if err := s.uploadImage(ctx, id, imagePoster, poster, out); err != nil {
		return err
	}
	return s.uploadImage(ctx, id, imageBackground, background, out)
}

func (s *FilmService) uploadImage(ctx context.Context, id, kind string, upload *domain.Upload, out *dto.FilmDto) error {
	if upload == nil {
		return nil
	}

	if _, err := s.api.Upload(ctx, filmImageRoute(id, kind), adapter.ImageToServer(upload), out); err != nil {
		return fmt.Errorf("uploading %s image: %w", kind, err)
	}
	return nil
}
