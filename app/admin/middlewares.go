package admin

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	// ResolverAddressKey is the gin context key the authenticated
	// resolver address is stored under.
	ResolverAddressKey = "resolverAddress"
)

// RequireResolver authenticates the bearer token and checks the caller's
// address against the resolution allow-list.
func RequireResolver(tokenMaker security.Maker, policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		allowed, err := policy.IsResolver(c.Request.Context(), payload.Address)
		if err != nil {
			api.ForbiddenResponse(c, "Could not verify resolver permissions")
			c.Abort()
			return
		}
		if !allowed {
			api.ForbiddenResponse(c, "Address is not a resolver")
			c.Abort()
			return
		}

		c.Set(ResolverAddressKey, payload.Address)
		c.Next()
	}
}

// ResolverAddress returns the authenticated resolver address set by
// RequireResolver.
func ResolverAddress(c *gin.Context) string {
	return c.GetString(ResolverAddressKey)
}
