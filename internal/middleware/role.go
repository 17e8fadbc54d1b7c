package middleware

import (
	"net/http"

	"meetspace/internal/domain"
	"meetspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	UserID string
	Role   domain.UserRole
}

func (i Identity) IsElevated() bool { return i.Role.IsElevated() }

func (i Identity) IsAdmin() bool { return i.Role == domain.RoleAdmin }

// CurrentIdentity returns the caller placed in the context by JWTAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	userID := c.GetString(ctxUserID)
	if userID == "" {
		return Identity{}, false
	}
	return Identity{UserID: userID, Role: domain.UserRole(c.GetString(ctxRole))}, true
}

// RequireAnyRole lets the request through when the caller holds one of roles.
func RequireAnyRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		roleStr, _ := role.(string)
		if _, ok := allowed[domain.UserRole(roleStr)]; !ok {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return RequireAnyRole(requiredRole)
}

func EmployeeOrAbove() gin.HandlerFunc {
	return RequireAnyRole(domain.RoleEmployee, domain.RoleOfficeManager, domain.RoleAdmin)
}

func ManagerOrAbove() gin.HandlerFunc {
	return RequireAnyRole(domain.RoleOfficeManager, domain.RoleAdmin)
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
