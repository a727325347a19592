package stub

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"

	"github.com/amaumene/whattowatch/internal/dto"
)

const (
	tokenHeader = "X-Token"
	userLocal   = "user"
)

type Server struct {
	app *fiber.App
	db  *bolthold.Store
	now func() time.Time
}

func New(db *bolthold.Store) *Server {
	s := &Server{
		db:  db,
		now: time.Now,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(requestLogger)
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/films", s.handleFilms)
	s.app.Post("/films/create", s.requireUser, s.handleCreateFilm)
	s.app.Get("/films/:id", s.handleFilm)
	s.app.Patch("/films/:id", s.requireUser, s.handleUpdateFilm)
	s.app.Delete("/films/:id", s.requireUser, s.handleDeleteFilm)
	s.app.Post("/films/:id/image/:kind", s.requireUser, s.handleFilmImage)
	s.app.Get("/genre/:genre", s.handleGenre)
	s.app.Get("/promo", s.handlePromo)

	s.app.Get("/comments/:filmId", s.handleComments)
	s.app.Post("/comments/:filmId", s.requireUser, s.handleCreateComment)

	s.app.Get("/favorite", s.requireUser, s.handleFavorites)
	s.app.Post("/favorite/:id", s.requireUser, s.handleAddFavorite)
	s.app.Delete("/favorite/:id", s.requireUser, s.handleRemoveFavorite)

	s.app.Get("/users/login", s.requireUser, s.handleCheckAuth)
	s.app.Post("/users/login", s.handleLogin)
	s.app.Delete("/users/logout", s.requireUser, s.handleLogout)
	s.app.Post("/users/register", s.handleRegister)
	s.app.Post("/users/:id/avatar", s.handleAvatar)

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	log.WithFields(log.Fields{
		"component": "stub",
		"address":   addr,
	}).Info("stub backend listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// HTTPClient returns a client whose requests are served in-process.
func (s *Server) HTTPClient() *http.Client {
	return &http.Client{Transport: &Transport{App: s.app}}
}

// Seed stores films, assigning ids where missing. The first film becomes
// the promo film.
func (s *Server) Seed(films []dto.FilmDto) error {
	for i := range films {
		record := filmFromDto(&films[i])
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		record.Promo = i == 0
		if err := s.db.Upsert(record.ID, record); err != nil {
			return fmt.Errorf("seeding film %s: %w", record.Title, err)
		}
	}
	return nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.WithFields(log.Fields{
			"path":  c.Path(),
			"error": err,
		}).Error("stub request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.WithFields(log.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"duration": time.Since(start),
	}).Debug("stub request handled")
	return err
}

func (s *Server) requireUser(c *fiber.Ctx) error {
	user, err := s.sessionUser(c)
	if err != nil {
		return err
	}
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "authorization required")
	}
	c.Locals(userLocal, user)
	return c.Next()
}

func (s *Server) sessionUser(c *fiber.Ctx) (*userRecord, error) {
	token := c.Get(tokenHeader)
	if token == "" {
		return nil, nil
	}

	var session sessionRecord
	err := s.db.Get(token, &session)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var user userRecord
	err = s.db.Get(session.UserID, &user)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return &user, nil
}

func currentUser(c *fiber.Ctx) *userRecord {
	user, _ := c.Locals(userLocal).(*userRecord)
	return user
}
