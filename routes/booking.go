package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(api fiber.Router, h *Handlers) {
	bookings := api.Group("/bookings", middleware.Protected(h.Tokens))

	bookings.Post("/", middleware.RequireRole(models.RoleCustomer),
		middleware.ValidateBody[dtos.CreateBookingRequest](), h.Bookings.CreateBooking)
	bookings.Get("/customer", middleware.RequireRole(models.RoleCustomer), h.Bookings.GetCustomerBookings)
	bookings.Get("/worker", middleware.RequireRole(models.RoleWorker), h.Bookings.GetWorkerBookings)
	bookings.Patch("/:id/status", middleware.ValidateBody[dtos.UpdateBookingStatusRequest](), h.Bookings.UpdateBookingStatus)
}
