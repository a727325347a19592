package stub

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/timshannon/bolthold"
)

func (s *Server) handleFavorites(c *fiber.Ctx) error {
	var favorites []favoriteRecord
	query := bolthold.Where("UserID").Eq(currentUser(c).ID)
	if err := s.db.Find(&favorites, query); err != nil {
		return fmt.Errorf("finding favorites: %w", err)
	}

	films := make([]filmRecord, 0, len(favorites))
	for _, favorite := range favorites {
		var film filmRecord
		err := s.db.Get(favorite.FilmID, &film)
		if errors.Is(err, bolthold.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("getting favorite film: %w", err)
		}
		films = append(films, film)
	}
	return s.writeFilms(c, films)
}

func (s *Server) handleAddFavorite(c *fiber.Ctx) error {
	film, err := s.getFilm(c.Params("id"))
	if err != nil {
		return err
	}

	user := currentUser(c)
	favorite := &favoriteRecord{UserID: user.ID, FilmID: film.ID}
	if err := s.db.Upsert(favoriteKey(user.ID, film.ID), favorite); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return s.writeFilm(c, fiber.StatusCreated, film)
}

func (s *Server) handleRemoveFavorite(c *fiber.Ctx) error {
	film, err := s.getFilm(c.Params("id"))
	if err != nil {
		return err
	}

	user := currentUser(c)
	err = s.db.Delete(favoriteKey(user.ID, film.ID), &favoriteRecord{})
	if err != nil && !errors.Is(err, bolthold.ErrNotFound) {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return s.writeFilm(c, fiber.StatusOK, film)
}
