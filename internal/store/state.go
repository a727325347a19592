package store

import "github.com/amaumene/whattowatch/internal/domain"

type NameSpace string

const (
	NameSpaceFilms         NameSpace = "FILMS"
	NameSpaceGenre         NameSpace = "GENRE"
	NameSpaceFilm          NameSpace = "FILM"
	NameSpaceSimilarFilms  NameSpace = "SIMILAR_FILMS"
	NameSpaceReviews       NameSpace = "REVIEWS"
	NameSpaceFavoriteFilms NameSpace = "FAVORITE_FILMS"
	NameSpacePromo         NameSpace = "PROMO"
	NameSpaceUser          NameSpace = "USER"
)

type FilmsData struct {
	Films     []domain.Film
	IsLoading bool
}

type FilmData struct {
	Film      *domain.Film
	IsLoading bool
}

// ReviewsData holds the reviews of a single film, FilmID.
type ReviewsData struct {
	FilmID    string
	Reviews   []domain.Review
	IsLoading bool
}

type UserData struct {
	AuthorizationStatus domain.AuthorizationStatus
	User                *domain.User
}

// State is a snapshot of every slice. Reducers never mutate slices or
// pointed-to values in place, so a snapshot stays valid after later
// dispatches; callers must treat it as read-only.
type State struct {
	Films         FilmsData
	Genre         FilmsData
	Film          FilmData
	SimilarFilms  FilmsData
	Reviews       ReviewsData
	FavoriteFilms FilmsData
	Promo         FilmData
	User          UserData
}

func initialState() State {
	return State{
		Films:         FilmsData{Films: []domain.Film{}},
		Genre:         FilmsData{Films: []domain.Film{}},
		SimilarFilms:  FilmsData{Films: []domain.Film{}},
		Reviews:       ReviewsData{Reviews: []domain.Review{}},
		FavoriteFilms: FilmsData{Films: []domain.Film{}},
		User:          UserData{AuthorizationStatus: domain.AuthUnknown},
	}
}
