package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit-tracker/backend/config"
	"habit-tracker/backend/metrics"
	"habit-tracker/backend/routes"
	"habit-tracker/backend/store"
	"habit-tracker/backend/utils"

	"github.com/alecthomas/kong"
)

var CLI struct {
	EnvFile   string `help:"Path to a .env file." default:".env"`
	Port      string `help:"Listening port. Overrides SERVER_PORT/PORT." short:"p"`
	LogLevel  string `help:"Log level (debug, info, warn, error). Overrides LOG_LEVEL."`
	LogFormat string `help:"Log format (text or json). Overrides LOG_FORMAT."`
	NoMetrics bool   `help:"Disable the /metrics endpoint."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("habit-tracker"),
		kong.Description("Habit tracking REST API with a browser client."),
		kong.UsageOnError(),
	)

	// Load configuration
	cfg, err := config.LoadConfig(CLI.EnvFile)
	if err != nil {
		kctx.Fatalf("error loading config: %v", err)
	}
	if CLI.Port != "" {
		cfg.ServerPort = CLI.Port
	}
	if CLI.LogLevel != "" {
		cfg.LogLevel = CLI.LogLevel
	}
	if CLI.LogFormat != "" {
		cfg.LogFormat = CLI.LogFormat
	}
	if CLI.NoMetrics {
		cfg.MetricsEnabled = false
	}
	if err := cfg.Validate(); err != nil {
		kctx.Fatalf("invalid configuration: %v", err)
	}

	logger := utils.InitLogger(utils.LoggerConfig{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
	})

	opts := []store.Option{store.WithLogger(logger)}
	if cfg.MetricsEnabled {
		opts = append(opts, store.WithRecorder(metrics.HabitRecorder{}))
	}
	habits := store.New(opts...)

	app := routes.NewApp(cfg, logger)
	routes.SetupRoutes(app, habits, cfg)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.WithError(err).Error("server shutdown error")
		}
	}()

	logger.WithField("port", cfg.ServerPort).Infof("Habit Tracker running at http://localhost:%s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.WithError(err).Fatal("server error")
	}
}
