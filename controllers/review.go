package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// CreateReview reviews a completed booking
// @Summary Review a completed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dtos.CreateReviewRequest true "Review"
// @Success 201 {object} dtos.ReviewResponse
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /api/reviews [post]
func (h *ReviewController) CreateReview(c *fiber.Ctx) error {
	req := middleware.Body[dtos.CreateReviewRequest](c)

	review, err := h.reviews.CreateReview(c.UserContext(), middleware.SessionFrom(c).UserID, req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, "Review submitted successfully", review)
}

// GetWorkerReviews lists a worker's reviews
// @Summary Get reviews for a worker
// @Tags reviews
// @Produce json
// @Param workerId path string true "Worker profile ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} dtos.ReviewPage
// @Router /api/reviews/worker/{workerId} [get]
func (h *ReviewController) GetWorkerReviews(c *fiber.Ctx) error {
	workerID, err := paramUUID(c, "workerId", services.ErrWorkerNotFound)
	if err != nil {
		return utils.HandleError(c, err)
	}

	page, err := h.reviews.GetWorkerReviews(c.UserContext(), workerID,
		c.QueryInt("page", 1), c.QueryInt("limit", services.DefaultReviewPageSize))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", page)
}

// GetWorkerReviewStats summarises a worker's ratings
// @Tags reviews
// @Param workerId path string true "Worker profile ID"
// @Success 200 {object} dtos.ReviewStats
// @Router /api/reviews/worker/{workerId}/stats [get]
func (h *ReviewController) GetWorkerReviewStats(c *fiber.Ctx) error {
	workerID, err := paramUUID(c, "workerId", services.ErrWorkerNotFound)
	if err != nil {
		return utils.HandleError(c, err)
	}

	stats, err := h.reviews.GetWorkerReviewStats(c.UserContext(), workerID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", stats)
}
