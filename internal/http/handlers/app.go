package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"warehouse/internal/config"
	applog "warehouse/internal/log"
	"warehouse/web"
)

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(db *sqlx.DB, cfg config.Config) (*fiber.App, error) {
	engine, err := web.Engine()
	if err != nil {
		return nil, err
	}
	bodyLimit := cfg.MaxUploadBytes
	if bodyLimit <= 0 {
		bodyLimit = 5 << 20
	}
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	if cfg.RateLimitPerMin > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitPerMin,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/healthz"
			},
			LimitReached: func(c *fiber.Ctx) error {
				c.Status(fiber.StatusTooManyRequests)
				applog.Security(c, "rate.limit.hit", nil)
				return c.JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
			},
		}))
	}

	Register(app, NewDeps(db, cfg))
	return app, nil
}

// Register mounts the routes. Trailing slashes are optional since the app
// does not use strict routing.
func Register(app *fiber.App, deps *Deps) {
	app.Get("/", deps.DashboardHandler.Home)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	sup := app.Group("/suppliers")
	sup.Post("/", deps.SupplierHandler.Create)
	sup.Get("/", deps.SupplierHandler.List)
	sup.Get("/:id", deps.SupplierHandler.Get)
	sup.Put("/:id", deps.SupplierHandler.Update)
	sup.Delete("/:id", deps.SupplierHandler.Delete)

	items := app.Group("/items")
	items.Post("/", deps.ItemHandler.Create)
	items.Get("/", deps.ItemHandler.List)
	items.Get("/:id", deps.ItemHandler.Get)
	items.Put("/:id", deps.ItemHandler.Update)
	items.Delete("/:id", deps.ItemHandler.Delete)

	ships := app.Group("/shipments")
	ships.Post("/", deps.ShipmentHandler.Create)
	ships.Get("/", deps.ShipmentHandler.List)
	ships.Get("/:id", deps.ShipmentHandler.Get)
	ships.Put("/:id", deps.ShipmentHandler.Update)
	ships.Delete("/:id", deps.ShipmentHandler.Delete)

	an := app.Group("/analytics")
	an.Get("/low_stock_alerts", deps.AnalyticsHandler.LowStock)
	an.Get("/stock_by_category", deps.AnalyticsHandler.StockByCategory)
	an.Get("/daily_shipments", deps.AnalyticsHandler.DailyShipments)

	app.Post("/predict_image", deps.PredictHandler.Image)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})
}
