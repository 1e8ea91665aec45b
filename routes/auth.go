package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/utils"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(api fiber.Router, h *Handlers, rateLimit int) {
	auth := api.Group("/auth")

	if rateLimit > 0 {
		auth.Use(limiter.New(limiter.Config{
			Max:        rateLimit,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return utils.Fail(c, fiber.StatusTooManyRequests, "Too many requests, please try again later.")
			},
		}))
	}

	// Public routes
	auth.Post("/register", middleware.ValidateBody[dtos.RegisterRequest](), h.Auth.Register)
	auth.Post("/login", middleware.ValidateBody[dtos.LoginRequest](), h.Auth.Login)
	auth.Post("/check-email", middleware.ValidateBody[dtos.CheckEmailRequest](), h.Auth.CheckEmail)
	auth.Post("/check-phone", middleware.ValidateBody[dtos.CheckPhoneRequest](), h.Auth.CheckPhone)

	// Protected routes
	protected := middleware.Protected(h.Tokens)
	auth.Get("/profile", protected, h.Auth.GetProfile)
	auth.Put("/profile", protected, middleware.ValidateBody[dtos.UpdateProfileRequest](), h.Auth.UpdateProfile)
	auth.Post("/profile/picture", protected, h.Auth.UploadProfilePicture)
	auth.Post("/logout", protected, h.Auth.Logout)
}
