package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// text или json
	Format string
	// debug, info, warn, error
	Level string
	// os.Stdout по умолчанию
	Output io.Writer
	// Включить/выключить цвета для консоли
	EnableColors bool
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) *logrus.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	logger := logrus.New()
	logger.SetOutput(cfg.Output)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   cfg.EnableColors,
			DisableColors: !cfg.EnableColors,
		})
	}

	return logger
}
