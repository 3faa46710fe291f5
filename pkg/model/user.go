package model

// Role represents the role of a user in the system.
type Role string

const (
	// RoleUser is a regular member who browses the event feed.
	RoleUser Role = "user"
	// RoleAdmin manages events on behalf of clubs.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin manages users and clubs platform-wide.
	RoleSuperAdmin Role = "super-admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Roles lists all known roles in display order.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleSuperAdmin}
}

// User represents an Eventify account as returned by the API.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
