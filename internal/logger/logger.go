// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a production logger for env "production" and a development logger otherwise.
func New(env string) *zap.Logger {
	if env == "production" {
		l, err := zap.NewProduction()
		if err == nil {
			return l
		}
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
