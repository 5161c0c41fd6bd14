package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the upstream gateway after authentication.
const (
	UserIDHeader   = "X-User-ID"
	UsernameHeader = "X-Username"
	UserRoleHeader = "X-User-Role"

	IdentityKey = "identity"
)

// Identity is the caller as asserted by the gateway.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// RequireIdentity reads the caller's identity headers and rejects requests
// without a user ID.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := Identity{
			UserID:   strings.TrimSpace(c.GetHeader(UserIDHeader)),
			Username: strings.TrimSpace(c.GetHeader(UsernameHeader)),
			Role:     strings.TrimSpace(c.GetHeader(UserRoleHeader)),
		}
		if id.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": UserIDHeader + " header is required",
				"kind":  "Unauthenticated",
			})
			return
		}
		if id.Username == "" {
			id.Username = id.UserID
		}

		c.Set(IdentityKey, id)
		c.Next()
	}
}

// GetIdentity returns the identity stored by RequireIdentity.
func GetIdentity(c *gin.Context) (Identity, bool) {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(Identity); ok {
			return id, true
		}
	}
	return Identity{}, false
}
