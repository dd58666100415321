package domain

import "context"

// TelegramLogin is the payload the Telegram login widget hands to its
// callback. It is relayed to the backend untouched; the backend verifies
// the hash against the bot token.
type TelegramLogin struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

// Gateway is the port for the backend REST API. Every method attaches the
// given credential when it is non-empty and proceeds unauthenticated
// otherwise.
type Gateway interface {
	Login(ctx context.Context, auth TelegramLogin) (token string, err error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*Usuario, error)
	RecentShifts(ctx context.Context, token string) ([]Turno, error)
	CreateShift(ctx context.Context, token string, in TurnoCreate) (*Turno, error)
	DeleteShift(ctx context.Context, token string, id int64) error
}

// ProfileCache is the port for the short-lived profile cache, keyed by
// credential.
type ProfileCache interface {
	Get(token string) (*Usuario, bool)
	Put(token string, u *Usuario)
	Clear(token string)
}
