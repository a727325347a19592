package adapter

import (
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
)

func FilmToClient(film *dto.FilmDto) domain.Film {
	return domain.Film{
		ID:               film.ID,
		Name:             film.Title,
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

func FilmsToClient(films []dto.FilmDto) []domain.Film {
	result := make([]domain.Film, len(films))
	for i := range films {
		result[i] = FilmToClient(&films[i])
	}
	return result
}

func UserToClient(user *dto.UserDto) domain.User {
	return domain.User{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarPath,
	}
}

func CommentToClient(comment *dto.CommentDto) domain.Review {
	return domain.Review{
		ID:     comment.ID,
		FilmID: comment.FilmID,
		Author: UserToClient(&comment.User),
		Text:   comment.Comment,
		Rating: comment.Rating,
		Date:   comment.PostDate,
	}
}

func CommentsToClient(comments []dto.CommentDto) []domain.Review {
	result := make([]domain.Review, len(comments))
	for i := range comments {
		result[i] = CommentToClient(&comments[i])
	}
	return result
}
