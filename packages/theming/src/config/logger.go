package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig controls console logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Prepare returns the configured zap logger for use by the program.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {
	var enabler zapcore.LevelEnabler
	switch conf.Level {
	case "none":
		return zap.NewNop(), nil
	case "debug":
		enabler = zapcore.DebugLevel
	default:
		enabler = zapcore.InfoLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), enabler)
	return zap.New(core), nil
}
