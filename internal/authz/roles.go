package authz

import "strings"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// HasRole reports whether the comma-separated role list carries the role.
func HasRole(roles, role string) bool {
	for _, r := range strings.Split(roles, ",") {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}

func IsAdmin(roles string) bool {
	return HasRole(roles, RoleAdmin)
}
