package config

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds a production logger when APP_ENV=production and a development
// logger otherwise. LOG_LEVEL overrides the level.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		al, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, err
		}
		cfg.Level = al
	}
	return cfg.Build()
}
