package adapter

import (
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
)

const (
	imageField  = "image"
	avatarField = "avatar"
)

func FilmToServer(film *domain.Film) dto.FilmDto {
	return dto.FilmDto{
		ID:               film.ID,
		Title:            film.Name,
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
		IsFavorite:       film.IsFavorite,
	}
}

func CreateFilmToServer(film *domain.NewFilm) dto.CreateFilmDto {
	return dto.CreateFilmDto{
		Title:            film.Name,
		Description:      film.Description,
		Genre:            film.Genre,
		Released:         film.Released,
		RunTime:          film.RunTime,
		Director:         film.Director,
		Starring:         film.Starring,
		PreviewImage:     film.PreviewImage,
		BackgroundColor:  film.BackgroundColor,
		VideoLink:        film.VideoLink,
		PreviewVideoLink: film.PreviewVideoLink,
	}
}

func UpdateFilmToServer(film *domain.Film) dto.UpdateFilmDto {
	return dto.UpdateFilmDto{
		Title:            film.Name,
		Description:      film.Description,
		Genre:            film.Genre,
		Released:         film.Released,
		RunTime:          film.RunTime,
		Director:         film.Director,
		Starring:         film.Starring,
		PreviewImage:     film.PreviewImage,
		BackgroundColor:  film.BackgroundColor,
		VideoLink:        film.VideoLink,
		PreviewVideoLink: film.PreviewVideoLink,
	}
}

func CreateCommentToServer(review *domain.NewReview) dto.CreateCommentDto {
	return dto.CreateCommentDto{
		Comment: review.Text,
		Rating:  review.Rating,
	}
}

func CreateUserToServer(user *domain.NewUser) dto.CreateUserDto {
	return dto.CreateUserDto{
		Email:    user.Email,
		Name:     user.Name,
		Password: user.Password,
	}
}

func AuthDataToServer(auth *domain.AuthData) dto.LoginUserDto {
	return dto.LoginUserDto{
		Email:    auth.Email,
		Password: auth.Password,
	}
}

func ImageToServer(upload *domain.Upload) *domain.FormFile {
	return toFormFile(imageField, upload)
}

func AvatarToServer(upload *domain.Upload) *domain.FormFile {
	return toFormFile(avatarField, upload)
}

func toFormFile(field string, upload *domain.Upload) *domain.FormFile {
	return &domain.FormFile{
		Field:    field,
		Filename: upload.Filename,
		Content:  upload.Content,
	}
}
