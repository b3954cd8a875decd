package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init is called so
// packages can log from tests without any setup.
var Log = zap.NewNop()

// Init builds the global logger. Debug mode uses zap's development config
// (console encoder, debug level), otherwise the production config is used.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries. Errors from syncing stderr are ignored
// since they are reported on some platforms even when nothing went wrong.
func Sync() {
	_ = Log.Sync()
}
