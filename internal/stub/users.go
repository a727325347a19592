package stub

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/timshannon/bolthold"
	"golang.org/x/crypto/bcrypt"

	"github.com/amaumene/whattowatch/internal/dto"
)

const avatarField = "avatar"

func (s *Server) handleCheckAuth(c *fiber.Ctx) error {
	return c.JSON(currentUser(c).toDto())
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var input dto.LoginUserDto
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := s.findUserByEmail(input.Email)
	if err != nil {
		return err
	}
	if user == nil || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(input.Password)) != nil {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect email or password")
	}

	session := &sessionRecord{Token: uuid.NewString(), UserID: user.ID}
	if err := s.db.Insert(session.Token, session); err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenDto{Token: session.Token})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	err := s.db.Delete(c.Get(tokenHeader), &sessionRecord{})
	if err != nil && !errors.Is(err, bolthold.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var input dto.CreateUserDto
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !strings.Contains(input.Email, "@") || input.Password == "" || input.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email, name and password are required")
	}

	existing, err := s.findUserByEmail(input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &userRecord{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := s.db.Insert(user.ID, user); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateUserWithIDDto{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}

func (s *Server) handleAvatar(c *fiber.Ctx) error {
	var user userRecord
	err := s.db.Get(c.Params("id"), &user)
	if errors.Is(err, bolthold.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	file, err := c.FormFile(avatarField)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "avatar file is required")
	}

	user.AvatarPath = fmt.Sprintf("/static/avatars/%s-%s", user.ID, file.Filename)
	if err := s.db.Update(user.ID, &user); err != nil {
		return fmt.Errorf("updating avatar: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.toDto())
}

func (s *Server) findUserByEmail(email string) (*userRecord, error) {
	var user userRecord
	err := s.db.FindOne(&user, bolthold.Where("Email").Eq(email))
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}
