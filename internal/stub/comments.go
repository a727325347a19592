package stub

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/timshannon/bolthold"

	"github.com/amaumene/whattowatch/internal/dto"
)

const (
	minRating = 0
	maxRating = 10
)

func (s *Server) handleComments(c *fiber.Ctx) error {
	filmID := c.Params("filmId")
	if _, err := s.getFilm(filmID); err != nil {
		return err
	}

	var comments []commentRecord
	query := bolthold.Where("FilmID").Eq(filmID).SortBy("PostDate")
	if err := s.db.Find(&comments, query); err != nil {
		return fmt.Errorf("finding comments: %w", err)
	}

	payload := make([]dto.CommentDto, 0, len(comments))
	for i := range comments {
		comment, err := s.commentDto(&comments[i])
		if err != nil {
			return err
		}
		payload = append(payload, comment)
	}
	return c.JSON(payload)
}

func (s *Server) handleCreateComment(c *fiber.Ctx) error {
	film, err := s.getFilm(c.Params("filmId"))
	if err != nil {
		return err
	}

	var input dto.CreateCommentDto
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if input.Comment == "" || input.Rating < minRating || input.Rating > maxRating {
		return fiber.NewError(fiber.StatusBadRequest, "comment text and a rating between 0 and 10 are required")
	}

	comment := &commentRecord{
		ID:       uuid.NewString(),
		FilmID:   film.ID,
		UserID:   currentUser(c).ID,
		Comment:  input.Comment,
		Rating:   input.Rating,
		PostDate: s.now().UTC(),
	}
	if err := s.db.Insert(comment.ID, comment); err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}

	if err := s.rate(film, input.Rating); err != nil {
		return err
	}

	payload, err := s.commentDto(comment)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payload)
}

func (s *Server) rate(film *filmRecord, rating float64) error {
	total := film.Rating*float64(film.ScoresCount) + rating
	film.ScoresCount++
	film.Rating = total / float64(film.ScoresCount)

	if err := s.db.Update(film.ID, film); err != nil {
		return fmt.Errorf("updating film rating: %w", err)
	}
	return nil
}

func (s *Server) commentDto(comment *commentRecord) (dto.CommentDto, error) {
	payload := dto.CommentDto{
		ID:       comment.ID,
		FilmID:   comment.FilmID,
		Comment:  comment.Comment,
		Rating:   comment.Rating,
		PostDate: comment.PostDate,
	}

	var user userRecord
	err := s.db.Get(comment.UserID, &user)
	if errors.Is(err, bolthold.ErrNotFound) {
		return payload, nil
	}
	if err != nil {
		return payload, fmt.Errorf("getting comment author: %w", err)
	}
	payload.User = user.toDto()
	return payload, nil
}
