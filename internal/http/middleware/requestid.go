package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the fiber locals key holding the id as a string.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID keeps a caller-supplied X-Request-ID when it looks sane and
// otherwise generates a UUID. The id is stored in locals and echoed back.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// validRequestID accepts up to 128 characters of [A-Za-z0-9._:-]. The id ends
// up in log lines and error bodies, so anything else is replaced.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}
