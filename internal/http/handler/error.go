package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"founderhub/internal/calendar"
	"founderhub/internal/http/middleware"
	"founderhub/internal/importer"
	"founderhub/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details []service.FieldError `json:"details,omitempty"`
}

// requestError is a client mistake detected while reading the request.
type requestError struct {
	status  int
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(code, message string) error {
	return &requestError{status: fiber.StatusBadRequest, code: code, message: message}
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details []service.FieldError) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// respondError renders known errors. Anything else is returned unchanged so the
// global ErrorHandler logs it and answers 500.
func respondError(c *fiber.Ctx, err error) error {
	var (
		reqErr *requestError
		valErr *service.ValidationError
	)
	switch {
	case errors.As(err, &reqErr):
		return writeError(c, reqErr.status, reqErr.code, reqErr.message)
	case errors.As(err, &valErr):
		return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "validation failed", valErr.Fields)
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "resource already exists")
	case errors.Is(err, service.ErrInvalidReference):
		return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_REFERENCE", "referenced resource does not exist")
	case errors.Is(err, service.ErrInvalidTransition):
		return writeError(c, fiber.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "only jpeg, png, gif and webp images are accepted")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file too large")
	case errors.Is(err, service.ErrEmptyFile), errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	case errors.Is(err, importer.ErrMissingColumn):
		return writeError(c, fiber.StatusBadRequest, "MISSING_COLUMN", err.Error())
	case errors.Is(err, importer.ErrEmptyFile), errors.Is(err, importer.ErrUnknownKind):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, calendar.ErrInvalidMonth), errors.Is(err, calendar.ErrInvalidWeekStart):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}
	return err
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Unexpected errors are logged with the request id; their text never reaches the client.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", message)
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "FILE_TOO_LARGE", "request body too large")
		case fiber.StatusUnprocessableEntity, fiber.StatusUnsupportedMediaType:
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "request body must be JSON")
		default:
			log.Error("request failed",
				zap.String("request_id", requestIDFromCtx(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrNotFound)
}
