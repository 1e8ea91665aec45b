package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/models"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(api fiber.Router, h *Handlers) {
	reviews := api.Group("/reviews")

	reviews.Post("/", middleware.Protected(h.Tokens), middleware.RequireRole(models.RoleCustomer),
		middleware.ValidateBody[dtos.CreateReviewRequest](), h.Reviews.CreateReview)
	reviews.Get("/worker/:workerId", h.Reviews.GetWorkerReviews)
	reviews.Get("/worker/:workerId/stats", h.Reviews.GetWorkerReviewStats)
}
