package stub

import (
	"fmt"

	"github.com/timshannon/bolthold"

	"github.com/amaumene/whattowatch/internal/dto"
)

// DemoFilms is the catalog the stub backend starts with when its database
// is empty.
func DemoFilms() []dto.FilmDto {
	return []dto.FilmDto{
		{
			ID:               "1",
			Title:            "The Grand Budapest Hotel",
			Description:      "A writer encounters the owner of an aging high-class hotel, who tells him of his early years serving as a lobby boy.",
			Genre:            "Comedy",
			Rating:           8.9,
			ScoresCount:      240,
			Released:         2014,
			RunTime:          99,
			Director:         "Wes Anderson",
			Starring:         []string{"Bill Murray", "Edward Norton", "Jude Law"},
			PosterImage:      "/static/1/poster.jpg",
			PreviewImage:     "/static/1/preview.jpg",
			BackgroundImage:  "/static/1/background.jpg",
			BackgroundColor:  "#ffffff",
			VideoLink:        "/static/1/video.mp4",
			PreviewVideoLink: "/static/1/preview.mp4",
		},
		{
			ID:          "2",
			Title:       "Moonrise Kingdom",
			Description: "A pair of young lovers flee their New England town.",
			Genre:       "Comedy",
			Rating:      7.8,
			ScoresCount: 118,
			Released:    2012,
			RunTime:     94,
			Director:    "Wes Anderson",
			Starring:    []string{"Jared Gilman", "Kara Hayward"},
		},
		{
			ID:          "3",
			Title:       "Shutter Island",
			Description: "A U.S. Marshal investigates the disappearance of a murderer who escaped from a hospital for the criminally insane.",
			Genre:       "Thriller",
			Rating:      8.2,
			ScoresCount: 302,
			Released:    2010,
			RunTime:     138,
			Director:    "Martin Scorsese",
			Starring:    []string{"Leonardo DiCaprio", "Emily Mortimer"},
		},
		{
			ID:          "4",
			Title:       "Aviator",
			Description: "A biopic depicting the early years of legendary director and aviator Howard Hughes.",
			Genre:       "Drama",
			Rating:      7.5,
			ScoresCount: 89,
			Released:    2004,
			RunTime:     170,
			Director:    "Martin Scorsese",
			Starring:    []string{"Leonardo DiCaprio", "Cate Blanchett"},
		},
	}
}

// Empty reports whether the backend holds no films yet.
func (s *Server) Empty() (bool, error) {
	var films []filmRecord
	if err := s.db.Find(&films, (&bolthold.Query{}).Limit(1)); err != nil {
		return false, fmt.Errorf("counting films: %w", err)
	}
	return len(films) == 0, nil
}
