package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	apierrors "withbliss-api/errors"
	"withbliss-api/handlers"
	"withbliss-api/middleware"
)

type Options struct {
	Metrics bool
}

// New builds the fiber app with middleware and every route mounted.
func New(h *handlers.Handler, logger zerolog.Logger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "With Bliss API",
		ErrorHandler:          apierrors.Handler,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	if opts.Metrics {
		app.Use(middleware.Metrics())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
	app.Use(middleware.AccessLog(logger))
	app.Use(recover.New())

	SetupRoutes(app, h)
	return app
}

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Home)
	app.Get("/healthz", h.Health)

	api := app.Group("/api", middleware.CORS())

	//Packages
	packages := api.Group("/packages")
	packages.Get("/", h.GetPackages)
	packages.Post("/", h.CreatePackage)
	packages.Put("/:id", h.UpdatePackage)
	packages.Delete("/:id", h.DeletePackage)

	//Bookings
	bookings := api.Group("/bookings")
	bookings.Get("/", h.GetBookings)
	bookings.Post("/", h.CreateBooking)

	//Contact
	contact := api.Group("/contact")
	contact.Get("/", h.GetContactMessages)
	contact.Post("/", h.CreateContactMessage)

	//Gallery
	gallery := api.Group("/gallery")
	gallery.Get("/", h.GetGallery)
	gallery.Post("/", h.CreateGalleryImage)
}
