// Package identity is the typed client for identity.v1.AuthService:
// registration, login, token refresh, logout and identity resolution.
package identity

import "fmt"

// UserRole is the account kind a user registered as.
type UserRole string

const (
	RoleChef       UserRole = "CHEF"
	RoleRestaurant UserRole = "RESTAURANT"
)

var roleToWire = map[UserRole]string{
	RoleChef:       "USER_ROLE_CHEF",
	RoleRestaurant: "USER_ROLE_RESTAURANT",
}

var wireToRole = map[string]UserRole{
	"USER_ROLE_CHEF":       RoleChef,
	"USER_ROLE_RESTAURANT": RoleRestaurant,
}

// Wire returns the proto-style string encoding of the role.
func (r UserRole) Wire() string { return roleToWire[r] }

// RoleFromWire decodes a wire role. Unknown or missing values fall back to
// RoleChef so replies from newer servers still resolve to a closed set.
func RoleFromWire(s string) UserRole {
	if role, ok := wireToRole[s]; ok {
		return role
	}
	return RoleChef
}

// ParseRoleWire is the strict variant of RoleFromWire, for callers that
// want to detect client/server version drift instead of defaulting.
func ParseRoleWire(s string) (UserRole, error) {
	if role, ok := wireToRole[s]; ok {
		return role, nil
	}
	return "", fmt.Errorf("unknown user role %q", s)
}

// AuthUser is the authenticated identity as the caller sees it.
type AuthUser struct {
	ID    string
	Email string
	Role  UserRole
}

// AuthTokens is an access/refresh token pair. The client performs no
// rotation bookkeeping beyond returning the pair the server issued.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult bundles the user and tokens returned by Register and Login.
type AuthResult struct {
	User   AuthUser
	Tokens AuthTokens
}
