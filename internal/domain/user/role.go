package user

// Role is the user's account role as reported by the backend.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleApprover Role = "approver"
	RoleStaff    Role = "staff"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleApprover, RoleStaff:
		return true
	default:
		return false
	}
}

// Effective returns the role used for local decisions. Unknown roles are
// treated as staff.
func (r Role) Effective() Role {
	if r.IsValid() {
		return r
	}
	return RoleStaff
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
