package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/amaumene/whattowatch/internal/domain"
)

func reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetFilms:
		films := emptyIfNil(a.Films)
		if slot := filmsSlot(&state, a.NameSpace); slot != nil {
			slot.Films = films
		} else {
			logUnsupported(action)
		}
	case SetFilm:
		state.Films.Films = replaceFilm(state.Films.Films, a.Film)
		state.Genre.Films = replaceFilm(state.Genre.Films, a.Film)
		state.SimilarFilms.Films = replaceFilm(state.SimilarFilms.Films, a.Film)
		state.FavoriteFilms.Films = replaceFilm(state.FavoriteFilms.Films, a.Film)
		state.Film.Film = replaceActive(state.Film.Film, a.Film)
		state.Promo.Film = replaceActive(state.Promo.Film, a.Film)
	case SetActiveFilm:
		if slot := filmSlot(&state, a.NameSpace); slot != nil {
			slot.Film = a.Film
		} else {
			logUnsupported(action)
		}
	case SetReviews:
		state.Reviews.FilmID = a.FilmID
		state.Reviews.Reviews = emptyIfNil(a.Reviews)
	case AddReview:
		if a.Review.FilmID != state.Reviews.FilmID {
			log.WithFields(log.Fields{
				"action":  action.Type(),
				"film_id": a.Review.FilmID,
				"held":    state.Reviews.FilmID,
			}).Debug("review belongs to another film")
			break
		}
		reviews := make([]domain.Review, 0, len(state.Reviews.Reviews)+1)
		reviews = append(reviews, state.Reviews.Reviews...)
		state.Reviews.Reviews = append(reviews, a.Review)
	case SetLoading:
		setLoading(&state, a)
	case SetAuthorizationStatus:
		state.User.AuthorizationStatus = a.Status
	case SetUser:
		state.User.User = a.User
	default:
		logUnsupported(action)
	}
	return state
}

func filmsSlot(state *State, ns NameSpace) *FilmsData {
	switch ns {
	case NameSpaceFilms:
		return &state.Films
	case NameSpaceGenre:
		return &state.Genre
	case NameSpaceSimilarFilms:
		return &state.SimilarFilms
	case NameSpaceFavoriteFilms:
		return &state.FavoriteFilms
	}
	return nil
}

func filmSlot(state *State, ns NameSpace) *FilmData {
	switch ns {
	case NameSpaceFilm:
		return &state.Film
	case NameSpacePromo:
		return &state.Promo
	}
	return nil
}

func setLoading(state *State, a SetLoading) {
	if slot := filmsSlot(state, a.NameSpace); slot != nil {
		slot.IsLoading = a.IsLoading
		return
	}
	if slot := filmSlot(state, a.NameSpace); slot != nil {
		slot.IsLoading = a.IsLoading
		return
	}
	if a.NameSpace == NameSpaceReviews {
		state.Reviews.IsLoading = a.IsLoading
		return
	}
	logUnsupported(a)
}

func replaceFilm(films []domain.Film, film domain.Film) []domain.Film {
	for i := range films {
		if films[i].ID != film.ID {
			continue
		}
		updated := make([]domain.Film, len(films))
		copy(updated, films)
		updated[i] = film
		return updated
	}
	return films
}

func replaceActive(current *domain.Film, film domain.Film) *domain.Film {
	if current == nil || current.ID != film.ID {
		return current
	}
	return &film
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func logUnsupported(action Action) {
	log.WithField("action", action.Type()).Warn("action ignored by reducer")
}
