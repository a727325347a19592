package store

import (
	"fmt"

	"github.com/amaumene/whattowatch/internal/domain"
)

// Action is a state transition understood by the reducer.
type Action interface {
	Type() string
}

// SetFilms replaces a film collection. Valid for the films, genre,
// similar-films and favorite-films slices.
type SetFilms struct {
	NameSpace NameSpace
	Films     []domain.Film
}

func (a SetFilms) Type() string { return fmt.Sprintf("%s/setFilms", a.NameSpace) }

// SetFilm replaces the film with the same id wherever it is held.
type SetFilm struct {
	Film domain.Film
}

func (a SetFilm) Type() string { return fmt.Sprintf("%s/setFilm", NameSpaceFilms) }

// SetActiveFilm sets a singular film slot. Valid for the film and promo
// slices; nil empties the slot.
type SetActiveFilm struct {
	NameSpace NameSpace
	Film      *domain.Film
}

func (a SetActiveFilm) Type() string { return fmt.Sprintf("%s/setActiveFilm", a.NameSpace) }

// SetReviews replaces the reviews slice with the reviews of FilmID.
type SetReviews struct {
	FilmID  string
	Reviews []domain.Review
}

func (a SetReviews) Type() string { return fmt.Sprintf("%s/setReviews", NameSpaceReviews) }

// AddReview appends a review. It is ignored unless the review belongs to
// the film whose reviews are held.
type AddReview struct {
	Review domain.Review
}

func (a AddReview) Type() string { return fmt.Sprintf("%s/addReview", NameSpaceReviews) }

type SetLoading struct {
	NameSpace NameSpace
	IsLoading bool
}

func (a SetLoading) Type() string { return fmt.Sprintf("%s/setLoading", a.NameSpace) }

type SetAuthorizationStatus struct {
	Status domain.AuthorizationStatus
}

func (a SetAuthorizationStatus) Type() string {
	return fmt.Sprintf("%s/setAuthorizationStatus", NameSpaceUser)
}

type SetUser struct {
	User *domain.User
}

func (a SetUser) Type() string { return fmt.Sprintf("%s/setUser", NameSpaceUser) }
