package domain

import "context"

// Requester sends calls to the catalog backend. Every method returns the
// HTTP status code of the response alongside any error; a non-2xx status
// is reported as an error.
type Requester interface {
	Get(ctx context.Context, path string, out any) (int, error)
	Post(ctx context.Context, path string, body, out any) (int, error)
	Patch(ctx context.Context, path string, body, out any) (int, error)
	Delete(ctx context.Context, path string, out any) (int, error)
	Upload(ctx context.Context, path string, file *FormFile, out any) (int, error)
}

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Error(message string)
}

type TokenStore interface {
	Token(ctx context.Context) (Token, error)
	SaveToken(ctx context.Context, token Token) error
	DropToken(ctx context.Context) error
}
