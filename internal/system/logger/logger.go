// Released under an MIT license. See LICENSE.

// Package logger creates the program's logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a development logger writing to stderr. Debug messages are
// dropped unless debug is true.
func New(debug bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("04:05.000")

	log, err := cfg.Build()
	if err != nil {
		panic(err.Error())
	}

	lvl := zapcore.InfoLevel
	if debug {
		lvl = zapcore.DebugLevel
	}

	log = log.WithOptions(zap.IncreaseLevel(lvl), zap.AddStacktrace(zapcore.FatalLevel))

	return log.Sugar()
}
