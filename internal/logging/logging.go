// Package logging builds the zap loggers shared by the API server and the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to stdout at the given level.
// Timestamps are rendered as RFC3339Nano in loc.
func New(level string, loc *time.Location) (*zap.Logger, error) {
	return NewWithWriter(os.Stdout, level, loc)
}

// NewWithWriter is New with an explicit sink, mostly for tests.
func NewWithWriter(w io.Writer, level string, loc *time.Location) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(t.In(loc).Format(time.RFC3339Nano))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
