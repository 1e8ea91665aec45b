package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/meinhoongagan/skillverify/controllers"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
)

// Handlers is everything the route table binds to.
type Handlers struct {
	Tokens   *services.TokenService
	Auth     *controllers.AuthController
	Workers  *controllers.WorkerController
	Bookings *controllers.BookingController
	Reviews  *controllers.ReviewController
	Admin    *controllers.AdminController
}

// NewHandlers builds the controllers over the services.
func NewHandlers(tokens *services.TokenService, auth *services.AuthService, workers *services.WorkerService,
	bookings *services.BookingService, reviews *services.ReviewService) *Handlers {
	return &Handlers{
		Tokens:   tokens,
		Auth:     controllers.NewAuthController(auth),
		Workers:  controllers.NewWorkerController(workers),
		Bookings: controllers.NewBookingController(bookings),
		Reviews:  controllers.NewReviewController(reviews),
		Admin:    controllers.NewAdminController(workers),
	}
}

type Options struct {
	AppName     string
	CORSOrigins string
	// RateLimitPerMinute caps auth requests per client IP; 0 disables it.
	RateLimitPerMinute int
	AccessLog          bool
}

// NewApp builds the fiber app with the shared middleware stack and every
// route registered.
func NewApp(h *Handlers, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    5 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return utils.Respond(c, fiber.StatusOK, "ok", nil)
	})

	Setup(app, h, opts)
	return app
}

// Setup registers every /api route.
func Setup(app *fiber.App, h *Handlers, opts Options) {
	api := app.Group("/api")

	SetupAuthRoutes(api, h, opts.RateLimitPerMinute)
	SetupWorkerRoutes(api, h)
	SetupBookingRoutes(api, h)
	SetupReviewRoutes(api, h)
	SetupAdminRoutes(api, h)

	app.Use(func(c *fiber.Ctx) error {
		return utils.Fail(c, fiber.StatusNotFound, "Route not found")
	})
}

// errorHandler renders anything that escaped a handler in the envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			utils.Logger.WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"error":  err,
			}).Error("request failed")
		}
		return utils.Fail(c, fe.Code, fe.Message)
	}
	return utils.HandleError(c, err)
}
