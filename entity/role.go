package entity

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
