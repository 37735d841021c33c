package user

// Role is the discriminator of the users table. Customers book vehicles;
// admins manage every booking.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level orders roles for RequireRoleAtLeast checks; unknown roles are 0.
func (r Role) Level() int {
	switch r {
	case RoleCustomer:
		return 1
	case RoleAdmin:
		return 2
	default:
		return 0
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
