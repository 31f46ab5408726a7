package utils

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the process-wide structured logger, building it on first
// use. Handlers log operational faults here; the cause never reaches the
// response body.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		var err error
		if os.Getenv("ENV") == "development" {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// Field is a small alias so packages without a zap import can attach context.
func Field(key, value string) zap.Field {
	return zap.String(key, value)
}
