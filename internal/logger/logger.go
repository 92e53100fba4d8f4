// internal/logger/logger.go
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init builds the global logger. Production gets JSON output, everything
// else gets the development console encoder.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = l
}

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	_ = log.Sync()
}

func L() *zap.Logger { return log }

func Info(msg string, fields ...zapcore.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { log.Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { log.Debug(msg, fields...) }
func Fatal(msg string, fields ...zapcore.Field) { log.Fatal(msg, fields...) }
