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
	imagePoster     = "poster"
	imageBackground = "background"
	imageField      = "image"
)

func (s *Server) handleFilms(c *fiber.Ctx) error {
	var films []filmRecord
	if err := s.db.Find(&films, (&bolthold.Query{}).SortBy("Title")); err != nil {
		return fmt.Errorf("finding films: %w", err)
	}
	return s.writeFilms(c, films)
}

func (s *Server) handleGenre(c *fiber.Ctx) error {
	var films []filmRecord
	query := bolthold.Where("Genre").Eq(c.Params("genre")).SortBy("Title")
	if err := s.db.Find(&films, query); err != nil {
		return fmt.Errorf("finding films by genre: %w", err)
	}
	return s.writeFilms(c, films)
}

func (s *Server) handleFilm(c *fiber.Ctx) error {
	film, err := s.getFilm(c.Params("id"))
	if err != nil {
		return err
	}
	return s.writeFilm(c, fiber.StatusOK, film)
}

func (s *Server) handlePromo(c *fiber.Ctx) error {
	var films []filmRecord
	if err := s.db.Find(&films, bolthold.Where("Promo").Eq(true).Limit(1)); err != nil {
		return fmt.Errorf("finding promo film: %w", err)
	}
	if len(films) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no promo film")
	}
	return s.writeFilm(c, fiber.StatusOK, &films[0])
}

func (s *Server) handleCreateFilm(c *fiber.Ctx) error {
	var input dto.CreateFilmDto
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if input.Title == "" || input.Genre == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and genre are required")
	}

	film := filmFromDto(&dto.FilmDto{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Description:      input.Description,
		Genre:            input.Genre,
		Released:         input.Released,
		RunTime:          input.RunTime,
		Director:         input.Director,
		Starring:         input.Starring,
		PreviewImage:     input.PreviewImage,
		BackgroundColor:  input.BackgroundColor,
		VideoLink:        input.VideoLink,
		PreviewVideoLink: input.PreviewVideoLink,
	})
	if err := s.db.Insert(film.ID, film); err != nil {
		return fmt.Errorf("inserting film: %w", err)
	}
	return s.writeFilm(c, fiber.StatusCreated, film)
}

func (s *Server) handleUpdateFilm(c *fiber.Ctx) error {
	film, err := s.getFilm(c.Params("id"))
	if err != nil {
		return err
	}

	var input dto.UpdateFilmDto
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	film.applyUpdate(&input)
	if err := s.db.Update(film.ID, film); err != nil {
		return fmt.Errorf("updating film: %w", err)
	}
	return s.writeFilm(c, fiber.StatusOK, film)
}

func (s *Server) handleDeleteFilm(c *fiber.Ctx) error {
	id := c.Params("id")
	err := s.db.Delete(id, &filmRecord{})
	if errors.Is(err, bolthold.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "film not found")
	}
	if err != nil {
		return fmt.Errorf("deleting film: %w", err)
	}

	if err := s.db.DeleteMatching(&commentRecord{}, bolthold.Where("FilmID").Eq(id)); err != nil {
		return fmt.Errorf("deleting comments: %w", err)
	}
	if err := s.db.DeleteMatching(&favoriteRecord{}, bolthold.Where("FilmID").Eq(id)); err != nil {
		return fmt.Errorf("deleting favorites: %w", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleFilmImage(c *fiber.Ctx) error {
	film, err := s.getFilm(c.Params("id"))
	if err != nil {
		return err
	}

	file, err := c.FormFile(imageField)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}
	path := fmt.Sprintf("/static/%s/%s-%s", film.ID, c.Params("kind"), file.Filename)

	switch c.Params("kind") {
	case imagePoster:
		film.PosterImage = path
	case imageBackground:
		film.BackgroundImage = path
	default:
		return fiber.NewError(fiber.StatusNotFound, "unknown image kind")
	}

	if err := s.db.Update(film.ID, film); err != nil {
		return fmt.Errorf("updating film image: %w", err)
	}
	return s.writeFilm(c, fiber.StatusCreated, film)
}

func (s *Server) getFilm(id string) (*filmRecord, error) {
	var film filmRecord
	err := s.db.Get(id, &film)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "film not found")
	}
	if err != nil {
		return nil, fmt.Errorf("getting film: %w", err)
	}
	return &film, nil
}

func (s *Server) writeFilms(c *fiber.Ctx, films []filmRecord) error {
	favorites, err := s.favoriteIDs(c)
	if err != nil {
		return err
	}

	payload := make([]dto.FilmDto, len(films))
	for i := range films {
		_, favorite := favorites[films[i].ID]
		payload[i] = films[i].toDto(favorite)
	}
	return c.JSON(payload)
}

func (s *Server) writeFilm(c *fiber.Ctx, status int, film *filmRecord) error {
	favorites, err := s.favoriteIDs(c)
	if err != nil {
		return err
	}

	_, favorite := favorites[film.ID]
	return c.Status(status).JSON(film.toDto(favorite))
}

// favoriteIDs returns the favorite film ids of the caller, if signed in.
func (s *Server) favoriteIDs(c *fiber.Ctx) (map[string]struct{}, error) {
	user := currentUser(c)
	if user == nil {
		var err error
		if user, err = s.sessionUser(c); err != nil || user == nil {
			return map[string]struct{}{}, err
		}
	}

	var favorites []favoriteRecord
	if err := s.db.Find(&favorites, bolthold.Where("UserID").Eq(user.ID)); err != nil {
		return nil, fmt.Errorf("finding favorites: %w", err)
	}

	ids := make(map[string]struct{}, len(favorites))
	for _, favorite := range favorites {
		ids[favorite.FilmID] = struct{}{}
	}
	return ids, nil
}
