// Package logutil configures the process-wide zap logger.
package logutil

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultLogLevel = "info"

// DefaultZapLoggerConfig writes console-encoded logs to stderr so that
// stdout stays clean for the table and JSON output.
func DefaultZapLoggerConfig() zap.Config {
	lcfg := zap.NewProductionConfig()
	lcfg.Encoding = "console"
	lcfg.OutputPaths = []string{"stderr"}
	lcfg.ErrorOutputPaths = []string{"stderr"}
	lcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lcfg.DisableStacktrace = true
	return lcfg
}

// Setup builds a logger at the given level and installs it as the
// global zap logger.
func Setup(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	lcfg := DefaultZapLoggerConfig()
	lcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := lcfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
