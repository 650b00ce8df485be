package routes

import (
	"habit-tracker/backend/config"
	"habit-tracker/backend/controllers"
	"habit-tracker/backend/metrics"
	"habit-tracker/backend/middleware"
	"habit-tracker/backend/utils"
	"habit-tracker/backend/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewApp builds the Fiber app with the shared middleware stack.
func NewApp(cfg *config.Config, logger logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "habit-tracker",
		ErrorHandler:          utils.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(recover.New())
	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}

func SetupRoutes(app *fiber.App, habits controllers.HabitStore, cfg *config.Config) {
	app.Get("/healthz", controllers.Health)
	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	habitsController := controllers.NewHabitsController(habits)
	api := app.Group("/api")
	api.Get("/stats", habitsController.GetStats)

	habitRoutes := api.Group("/habits")
	habitRoutes.Get("/", habitsController.ListHabits)
	habitRoutes.Post("/", habitsController.CreateHabit)
	habitRoutes.Get("/:id", habitsController.GetHabit)
	habitRoutes.Post("/:id/done", habitsController.MarkDone)
	habitRoutes.Delete("/:id", habitsController.DeleteHabit)

	// Browser client; registered last so API routes win.
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  web.FileSystem(),
		Index: "/index.html",
	}))
}
