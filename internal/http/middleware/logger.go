package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"founderhub/internal/auth"
	"founderhub/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one structured line.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
// - subject (when the request was authenticated)
//
// 5xx responses are logged at error level, 4xx at warn.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if id, ok := c.Locals(IdentityLocalKey).(*auth.Identity); ok {
			fields = append(fields, zap.String("subject", id.Subject))
		}

		lvl := zapcore.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			lvl = zapcore.ErrorLevel
		case status >= fiber.StatusBadRequest:
			lvl = zapcore.WarnLevel
		}
		if ce := log.Check(lvl, "http_request"); ce != nil {
			ce.Write(fields...)
		}
		return err
	}
}

// LoggerWithWriter is Logger over a JSON logger writing to w, with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	log, err := logging.NewWithWriter(w, "info", loc)
	if err != nil {
		log = zap.NewNop()
	}
	return Logger(log)
}
