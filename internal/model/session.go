package model

// Role classifies what an authenticated user may do in the shell.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleAccountant Role = "Accountant"
	RoleViewer     Role = "Viewer"
	RoleSupervisor Role = "Supervisor"
)

// User is the authenticated actor for the current session.
type User struct {
	ID       string
	Username string
	Role     Role
	Token    string // opaque session token, regenerated on every login
}
