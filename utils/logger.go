package utils

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// InitializeLogger sets up the logging configuration. Production mode uses
// the JSON encoder at info level; development uses the console encoder with
// colored levels at debug level.
func InitializeLogger(production bool) {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if production {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	})
}

// GetLogger retrieves the global logger, building a development logger if
// InitializeLogger has not run yet.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitializeLogger(false)
	}
	return logger
}
