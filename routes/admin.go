package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/models"
)

// SetupAdminRoutes configures worker verification for administrators
func SetupAdminRoutes(api fiber.Router, h *Handlers) {
	admin := api.Group("/admin", middleware.Protected(h.Tokens), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/workers", h.Admin.ListWorkers)
	admin.Patch("/workers/:id/verification", middleware.ValidateBody[dtos.VerificationRequest](), h.Admin.SetVerification)
}
