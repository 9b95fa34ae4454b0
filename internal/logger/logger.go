// Package logger builds the service's zap logger.
package logger

import "go.uber.org/zap"

// NewNamed creates a named zap logger tuned to the app environment:
// JSON production config for "production", console development config
// otherwise.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
