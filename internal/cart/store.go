package cart

import "context"

// SessionStore persists carts per anonymous session.
//
// Implementations are best-effort: callers treat a load failure as an
// empty cart and a save failure as non-fatal.
type SessionStore interface {
	// LoadCart returns the cart for a session, or an empty cart when the
	// session has none (expired, evicted, or never saved).
	LoadCart(context context.Context, sessionID string) (*Cart, error)
	SaveCart(context context.Context, sessionID string, c *Cart) error
	DeleteCart(context context.Context, sessionID string) error
}
