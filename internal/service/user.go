package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/amaumene/whattowatch/internal/adapter"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/store"
)

var errEmptyToken = errors.New("login response carried no token")

type UserService struct {
	dispatcher
	tokens domain.TokenStore
}

func NewUserService(api domain.Requester, st *store.Store, notifier domain.Notifier, tokens domain.TokenStore) *UserService {
	return &UserService{
		dispatcher: newDispatcher(api, st, notifier),
		tokens:     tokens,
	}
}

// CheckAuth asks the backend who the current token belongs to. Any failure
// is treated as not authenticated.
func (s *UserService) CheckAuth(ctx context.Context) {
	var payload dto.UserDto
	if _, err := s.api.Get(ctx, routeLogin, &payload); err != nil {
		s.store.Dispatch(store.SetAuthorizationStatus{Status: domain.NoAuth})
		s.store.Dispatch(store.SetUser{User: nil})
		return
	}

	user := adapter.UserToClient(&payload)
	s.store.Dispatch(store.SetAuthorizationStatus{Status: domain.Auth})
	s.store.Dispatch(store.SetUser{User: &user})
}

// Login exchanges credentials for a token, persists it and re-checks the
// authorization status. On failure the status is left as it was.
func (s *UserService) Login(ctx context.Context, auth *domain.AuthData) {
	var payload dto.TokenDto
	if _, err := s.api.Post(ctx, routeLogin, adapter.AuthDataToServer(auth), &payload); err != nil {
		s.report("login", "Can't login", err)
		return
	}
	if payload.Token == "" {
		s.report("login", "Can't login", errEmptyToken)
		return
	}

	if err := s.tokens.SaveToken(ctx, domain.Token(payload.Token)); err != nil {
		s.report("login", "Can't login", err)
		return
	}

	s.CheckAuth(ctx)
}

// Logout ends the session. The local token is dropped only once the
// backend confirmed the logout.
func (s *UserService) Logout(ctx context.Context) {
	if _, err := s.api.Delete(ctx, routeLogout, nil); err != nil {
		s.report("logout", "Can't logout", err)
		return
	}

	if err := s.tokens.DropToken(ctx); err != nil {
		s.report("logout", "Can't logout", err)
		return
	}

	s.store.Dispatch(store.SetAuthorizationStatus{Status: domain.NoAuth})
	s.store.Dispatch(store.SetUser{User: nil})
}

// RegisterUser signs up a new user and uploads the avatar once the backend
// reports the user created.
func (s *UserService) RegisterUser(ctx context.Context, user *domain.NewUser) error {
	var created dto.CreateUserWithIDDto
	status, err := s.api.Post(ctx, routeRegister, adapter.CreateUserToServer(user), &created)
	if err != nil {
		return s.fail("register", ErrRegister, err)
	}

	if status == http.StatusCreated && user.Avatar != nil {
		if _, err := s.api.Upload(ctx, avatarRoute(created.ID), adapter.AvatarToServer(user.Avatar), nil); err != nil {
			return s.fail("register", ErrRegister, err)
		}
	}
	return nil
}
