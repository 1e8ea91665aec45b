package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/models"
)

// SetupWorkerRoutes configures the worker directory and worker self-service
func SetupWorkerRoutes(api fiber.Router, h *Handlers) {
	workers := api.Group("/workers")

	self := workers.Group("/me", middleware.Protected(h.Tokens), middleware.RequireRole(models.RoleWorker))
	self.Get("/", h.Workers.GetMyProfile)
	self.Patch("/availability", middleware.ValidateBody[dtos.AvailabilityRequest](), h.Workers.SetAvailability)

	workers.Get("/", h.Workers.GetWorkers)
	workers.Get("/:id", h.Workers.GetWorker)
}
