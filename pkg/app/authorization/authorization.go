package authorization

import (
	"sort"

	"github.com/NeuralTrust/Marketplace/pkg/infra/jwt"
	"github.com/spf13/cast"
)

const (
	RoleAdmin            = "Admin"
	RoleInventoryManager = "InventoryManager"
	RoleSalesManager     = "SalesManager"
	RoleStoreSupervisor  = "StoreSupervisor"
)

type User struct {
	ID       string
	TenantID string
	Roles    map[string]any
}

func UserFromClaims(claims *jwt.Claims) *User {
	if claims == nil {
		return nil
	}
	return &User{
		ID:       claims.Subject,
		TenantID: claims.TenantID,
		Roles:    claims.Roles,
	}
}

func IsAdmin(user *User) bool {
	return HasRole(user, RoleAdmin)
}

func HasRole(user *User, role string) bool {
	if user == nil || user.Roles == nil {
		return false
	}
	value, ok := user.Roles[role]
	return ok && granted(value)
}

// UserRoles lists the granted role names in lexical order.
func UserRoles(user *User) []string {
	if user == nil || user.Roles == nil {
		return []string{}
	}
	roles := make([]string, 0, len(user.Roles))
	for role, value := range user.Roles {
		if granted(value) {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles
}

// granted accepts the literal true and the number 1, nothing else.
func granted(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string, nil:
		return false
	default:
		n, err := cast.ToFloat64E(v)
		return err == nil && n == 1
	}
}
