package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can delete records
	RoleManager  Role = "manager"  // Can manage employees and approve leave
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin checks if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}
