package model

import "time"

// Session represents an authenticated browser session on the web
// front-end. Token carries the Eventify auth cookie value so that
// requests made on the visitor's behalf can replay it.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"-"` // Eventify auth cookie (not exposed via JSON)
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// HasRole reports whether the session holds exactly the given role.
// There is no role hierarchy: a super-admin does not pass an admin check.
func (s *Session) HasRole(r Role) bool {
	return s.Role == r
}

// User returns the identity record carried by the session.
func (s *Session) User() User {
	return User{ID: s.UserID, Username: s.Username, Email: s.Email, Role: s.Role}
}
