// Package logger exposes the default loggers used by this module.
// They are exposed as variables so that clients may tune, redirect
// or silence the output.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Warning receives a message for each recoverable problem, like a
// shorthand value the lenient expansion degrades instead of
// rejecting, or a style attribute kept verbatim because it does not
// parse. Replace it with zap.NewNop() to silence the module.
var Warning = newConsole(zapcore.WarnLevel)

func newConsole(level zapcore.Level) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stdout), level)
	return zap.New(core).Named("inlinestyle")
}
