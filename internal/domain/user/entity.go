package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can correct and review attendance
	RoleEmployee Role = "employee" // Regular employee
)

// Identity is the authenticated caller as carried by the access token.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       Role
}

// IsManager checks if user is manager or owner
func (i Identity) IsManager() bool {
	return i.Role == RoleManager || i.Role == RoleOwner
}

// HasEmployee checks if the caller is linked to an employee record
func (i Identity) HasEmployee() bool {
	return i.EmployeeID != ""
}
