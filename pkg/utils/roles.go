package utils

const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

var ValidRoles = []string{RoleUser, RoleSeller, RoleAdmin}
