package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/timshannon/bolthold"

	"github.com/amaumene/whattowatch/internal/domain"
)

const tokenKey = "what-to-watch-token"

type tokenRecord struct {
	Value string
}

type tokenRepository struct {
	store *bolthold.Store
}

func NewTokenRepository(store *bolthold.Store) domain.TokenStore {
	return &tokenRepository{store: store}
}

func (r *tokenRepository) Token(ctx context.Context) (domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var record tokenRecord
	err := r.store.Get(tokenKey, &record)
	if errors.Is(err, bolthold.ErrNotFound) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}
	return domain.Token(record.Value), nil
}

func (r *tokenRepository) SaveToken(ctx context.Context, token domain.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if token == "" {
		return fmt.Errorf("saving token: %w", domain.ErrInvalidInput)
	}

	if err := r.store.Upsert(tokenKey, &tokenRecord{Value: string(token)}); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (r *tokenRepository) DropToken(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Delete(tokenKey, &tokenRecord{})
	if err != nil && !errors.Is(err, bolthold.ErrNotFound) {
		return fmt.Errorf("dropping token: %w", err)
	}
	return nil
}
