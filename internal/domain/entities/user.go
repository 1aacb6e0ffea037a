package entities

// UserRole represents the role of a user in the clinic
type UserRole string

const (
	UserRoleDoctor UserRole = "doctor"
	UserRoleAdmin  UserRole = "admin"
	UserRoleStaff  UserRole = "staff"
)

// User represents an account in the clinic's user directory
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}
