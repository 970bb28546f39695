package session

// Store resolves the active user for one projection. It is injected rather
// than read from a global so replay rendering can be pointed at any
// observer (the signed-in user, a spectator, a test fixture).
type Store interface {
	// CurrentUserID returns the active user's id, or "" when unauthenticated.
	CurrentUserID() string
}

// Static is a fixed-id store.
type Static string

func (s Static) CurrentUserID() string { return string(s) }

// UserID resolves a possibly-nil store; nil means unauthenticated.
func UserID(s Store) string {
	if s == nil {
		return ""
	}
	return s.CurrentUserID()
}
