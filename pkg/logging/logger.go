package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger. Development gets the human
// console encoder, everything else gets production JSON.
func NewLogger(serviceName, environment string) (*zap.Logger, error) {
	var config zap.Config

	if environment == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	logger, err := config.Build()

	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", serviceName)), nil
}
