package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/auth"
)

// IdentityLocalKey is the key under which Authenticate stores the caller's *auth.Identity.
const IdentityLocalKey = "identity"

// Authenticate rejects requests without a valid bearer token with 401 and
// stores the verified identity in locals for downstream handlers.
func Authenticate(v auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		id, err := v.Verify(raw)
		if err != nil {
			msg := "invalid bearer token"
			if errors.Is(err, auth.ErrMissingToken) {
				msg = "missing bearer token"
			}
			c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="founderhub"`)
			return fiber.NewError(fiber.StatusUnauthorized, msg)
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}

// RequireAdmin must run after Authenticate. Non-admins get 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Identity(c).Admin {
			return fiber.NewError(fiber.StatusForbidden, "admin role required")
		}
		return c.Next()
	}
}

// Identity returns the authenticated caller, or the zero Identity when the route is public.
func Identity(c *fiber.Ctx) auth.Identity {
	if id, ok := c.Locals(IdentityLocalKey).(*auth.Identity); ok && id != nil {
		return *id
	}
	return auth.Identity{}
}
