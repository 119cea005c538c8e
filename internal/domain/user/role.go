package user

import "errors"

// Role is carried in the access token issued by the auth collaborator.
// "system" exists for employee management screens; it carries the same
// privileges as "admin" here.
type Role string

const (
	RoleSystem   Role = "system"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var (
	ErrAdminPrivilegeRequired = errors.New("administrator privilege required")
)

// IsAdmin reports whether the role may perform administrator actions.
func IsAdmin(role Role) bool {
	return role == RoleAdmin || role == RoleSystem
}
