package ports

import "context"

// SessionStore maps opaque session tokens to user identities. Tokens are
// capabilities: unguessable, never shared between sessions, and dead the
// moment End is called even if a client replays them.
type SessionStore interface {
	// Start creates a session for userID and returns its token.
	Start(ctx context.Context, userID string) (string, error)
	// Resolve returns the user id behind token, or domain.ErrAnonymous when
	// the token is unknown or has been ended.
	Resolve(ctx context.Context, token string) (string, error)
	// End destroys the session. Ending an unknown token is not an error.
	End(ctx context.Context, token string) error
}
