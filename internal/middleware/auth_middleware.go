package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/schoolhub/internal/app/auth"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

const identityKey = "identity"

// IdentityResolver maps a token subject to the account behind it
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, email string) (*appauth.Identity, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	resolver   IdentityResolver
	policy     *appauth.Policy
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, resolver IdentityResolver, policy *appauth.Policy) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
		policy:     policy,
	}
}

// Authenticate populates the caller identity from a bearer token. A missing or
// invalid token leaves the request anonymous; a valid token whose subject no
// longer exists is rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Ignoring invalid bearer token")
			c.Next()
			return
		}

		identity, err := m.resolver.ResolveIdentity(c.Request.Context(), claims.Subject)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Authorize enforces the route policy against the identity set by Authenticate
func (m *AuthMiddleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.policy.Allows(c.Request.Method, c.Request.URL.Path, CurrentIdentity(c)) {
			HandleAPIError(c, apperrors.ErrAccessDenied)
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller, or nil for anonymous requests
func CurrentIdentity(c *gin.Context) *appauth.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*appauth.Identity)
	return identity
}
