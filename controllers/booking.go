package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBooking books a worker
// @Summary Create a booking
// @Description Amount is the worker's hourly rate at booking time
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body dtos.CreateBookingRequest true "Booking"
// @Success 201 {object} dtos.BookingResponse
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/bookings [post]
func (h *BookingController) CreateBooking(c *fiber.Ctx) error {
	req := middleware.Body[dtos.CreateBookingRequest](c)

	booking, err := h.bookings.CreateBooking(c.UserContext(), middleware.SessionFrom(c).UserID, req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, "Booking created successfully", booking)
}

// GetCustomerBookings lists the caller's bookings as a customer
// @Tags bookings
// @Security BearerAuth
// @Success 200 {array} dtos.BookingResponse
// @Router /api/bookings/customer [get]
func (h *BookingController) GetCustomerBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.GetCustomerBookings(c.UserContext(), middleware.SessionFrom(c).UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", bookings)
}

// GetWorkerBookings lists bookings made with the calling worker
// @Tags bookings
// @Security BearerAuth
// @Success 200 {array} dtos.BookingResponse
// @Router /api/bookings/worker [get]
func (h *BookingController) GetWorkerBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.GetWorkerBookings(c.UserContext(), middleware.SessionFrom(c).UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", bookings)
}

// UpdateBookingStatus moves a booking through its lifecycle
// @Summary Update booking status
// @Description Customers may only cancel; workers may confirm, start, complete or cancel
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param status body dtos.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} dtos.BookingResponse
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingController) UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id", services.ErrBookingNotFound)
	if err != nil {
		return utils.HandleError(c, err)
	}
	req := middleware.Body[dtos.UpdateBookingStatusRequest](c)

	booking, err := h.bookings.UpdateBookingStatus(c.UserContext(), middleware.SessionFrom(c), id, req.Status)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Booking status updated", booking)
}
