package models

// Roles a principal may hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Actor is the identity a request acts as, resolved by the API gate
// from a JWT or an API key. Services enforce ownership against it.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the actor bypasses ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
