package stub

import (
	"time"

	"github.com/amaumene/whattowatch/internal/dto"
)

type filmRecord struct {
	ID               string
	Title            string
	Description      string
	Genre            string `boltholdIndex:"Genre"`
	Rating           float64
	ScoresCount      int
	Released         int
	RunTime          int
	Director         string
	Starring         []string
	PosterImage      string
	PreviewImage     string
	BackgroundImage  string
	BackgroundColor  string
	VideoLink        string
	PreviewVideoLink string
	Promo            bool
}

type commentRecord struct {
	ID       string
	FilmID   string `boltholdIndex:"FilmID"`
	UserID   string
	Comment  string
	Rating   float64
	PostDate time.Time
}

type userRecord struct {
	ID           string
	Email        string `boltholdIndex:"Email"`
	Name         string
	PasswordHash []byte
	AvatarPath   string
}

type favoriteRecord struct {
	UserID string `boltholdIndex:"UserID"`
	FilmID string
}

type sessionRecord struct {
	Token  string
	UserID string
}

func favoriteKey(userID, filmID string) string {
	return userID + ":" + filmID
}

func filmFromDto(film *dto.FilmDto) *filmRecord {
	return &filmRecord{
		ID:               film.ID,
		Title:            film.Title,
		Description:      film.Description,
		Genre:            film.Genre,
		Rating:           film.Rating,
		ScoresCount:      film.ScoresCount,
		Released:         film.Released,
		RunTime:          film.RunTime,
		Director:         film.Director,
		Starring:         film.Starring,
		PosterImage:      film.PosterImage,
		PreviewImage:     film.PreviewImage,
		BackgroundImage:  film.BackgroundImage,
		BackgroundColor:  film.BackgroundColor,
		VideoLink:        film.VideoLink,
		PreviewVideoLink: film.PreviewVideoLink,
	}
}

func (r *filmRecord) toDto(favorite bool) dto.FilmDto {
	return dto.FilmDto{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Genre:            r.Genre,
		Rating:           r.Rating,
		ScoresCount:      r.ScoresCount,
		Released:         r.Released,
		RunTime:          r.RunTime,
		Director:         r.Director,
		Starring:         r.Starring,
		PosterImage:      r.PosterImage,
		PreviewImage:     r.PreviewImage,
		BackgroundImage:  r.BackgroundImage,
		BackgroundColor:  r.BackgroundColor,
		VideoLink:        r.VideoLink,
		PreviewVideoLink: r.PreviewVideoLink,
		IsFavorite:       favorite,
	}
}

func (r *filmRecord) applyUpdate(update *dto.UpdateFilmDto) {
	setString(&r.Title, update.Title)
	setString(&r.Description, update.Description)
	setString(&r.Genre, update.Genre)
	setString(&r.Director, update.Director)
	setString(&r.PreviewImage, update.PreviewImage)
	setString(&r.BackgroundColor, update.BackgroundColor)
	setString(&r.VideoLink, update.VideoLink)
	setString(&r.PreviewVideoLink, update.PreviewVideoLink)
	if update.Released != 0 {
		r.Released = update.Released
	}
	if update.RunTime != 0 {
		r.RunTime = update.RunTime
	}
	if len(update.Starring) > 0 {
		r.Starring = update.Starring
	}
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func (r *userRecord) toDto() dto.UserDto {
	return dto.UserDto{ID: r.ID, Email: r.Email, Name: r.Name, AvatarPath: r.AvatarPath}
}
