package domain

type User struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

// Token is the opaque session token issued by the backend on login.
type Token string

type AuthData struct {
	Email    string
	Password string
}

type NewUser struct {
	Email    string
	Name     string
	Password string
	Avatar   *Upload
}

type AuthorizationStatus string

const (
	AuthUnknown AuthorizationStatus = "UNKNOWN"
	Auth        AuthorizationStatus = "AUTH"
	NoAuth      AuthorizationStatus = "NO_AUTH"
)
