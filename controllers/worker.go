package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
)

type WorkerController struct {
	workers *services.WorkerService
}

func NewWorkerController(workers *services.WorkerService) *WorkerController {
	return &WorkerController{workers: workers}
}

// GetWorkers lists available, verified workers
// @Summary Browse workers
// @Description Only available and verified workers are listed
// @Tags workers
// @Produce json
// @Param service query string false "Skill to match"
// @Param search query string false "Part of the worker's name"
// @Success 200 {array} dtos.WorkerSummary
// @Router /api/workers [get]
func (h *WorkerController) GetWorkers(c *fiber.Ctx) error {
	var query dtos.WorkerListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	workers, err := h.workers.GetWorkers(c.UserContext(), query)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", workers)
}

// GetWorker returns a worker's public profile
// @Summary Get a worker by ID
// @Tags workers
// @Produce json
// @Param id path string true "Worker profile ID"
// @Success 200 {object} dtos.WorkerDetail
// @Failure 404 {object} utils.Response
// @Router /api/workers/{id} [get]
func (h *WorkerController) GetWorker(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id", services.ErrWorkerNotFound)
	if err != nil {
		return utils.HandleError(c, err)
	}

	worker, err := h.workers.GetWorkerByID(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if worker == nil {
		return utils.HandleError(c, services.ErrWorkerNotFound)
	}
	return utils.Respond(c, fiber.StatusOK, "", worker)
}

// GetMyProfile returns the calling worker's own profile
// @Tags workers
// @Security BearerAuth
// @Router /api/workers/me [get]
func (h *WorkerController) GetMyProfile(c *fiber.Ctx) error {
	worker, err := h.workers.GetMyProfile(c.UserContext(), middleware.SessionFrom(c).UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", worker)
}

// SetAvailability toggles whether the calling worker accepts bookings
// @Tags workers
// @Accept json
// @Security BearerAuth
// @Param availability body dtos.AvailabilityRequest true "Availability"
// @Router /api/workers/me/availability [patch]
func (h *WorkerController) SetAvailability(c *fiber.Ctx) error {
	req := middleware.Body[dtos.AvailabilityRequest](c)

	worker, err := h.workers.SetAvailability(c.UserContext(), middleware.SessionFrom(c).UserID, *req.IsAvailable)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Availability updated", worker)
}
