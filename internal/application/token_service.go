package application

import "context"

// TokenService mints a signed, time-limited bearer credential for an
// authenticated identity. Implementations live in infrastructure; the
// application layer depends only on this port.
type TokenService interface {
	GenerateToken(ctx context.Context, userID int64, email string) (string, error)
}
