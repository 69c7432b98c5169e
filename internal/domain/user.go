package domain

// RoleAdmin is the only role the dashboard issues.
const RoleAdmin = "admin"

// User is the fabricated admin session identity. Login accepts any
// credentials; no password is ever stored.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
