package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
)

type AdminController struct {
	workers *services.WorkerService
}

func NewAdminController(workers *services.WorkerService) *AdminController {
	return &AdminController{workers: workers}
}

// ListWorkers lists worker profiles by verification status
// @Summary List workers awaiting or past verification
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING (default), VERIFIED or REJECTED"
// @Success 200 {array} dtos.WorkerSummary
// @Router /api/admin/workers [get]
func (h *AdminController) ListWorkers(c *fiber.Ctx) error {
	status := models.VerificationStatus(strings.ToUpper(c.Query("status", string(models.VerificationPending))))

	workers, err := h.workers.ListByVerification(c.UserContext(), status)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", workers)
}

// SetVerification approves or rejects a worker
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Worker profile ID"
// @Param verification body dtos.VerificationRequest true "New status"
// @Router /api/admin/workers/{id}/verification [patch]
func (h *AdminController) SetVerification(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id", services.ErrWorkerNotFound)
	if err != nil {
		return utils.HandleError(c, err)
	}
	req := middleware.Body[dtos.VerificationRequest](c)

	worker, err := h.workers.SetVerification(c.UserContext(), id, models.VerificationStatus(req.Status))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Verification status updated", worker)
}
