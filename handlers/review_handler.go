package handlers

import (
	"strconv"

	"confhub-api/helper"
	"confhub-api/models"
	"confhub-api/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, Helper: &helper.HTTPHelper{}}
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviews()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid review ID", h.Helper.EmptyJsonMap())
		return
	}

	review, err := h.reviewService.GetReview(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid review ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(uint(id), req)
	if err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), h.Helper.GetStatusCode(err), `reviewError`)
		return
	}

	h.Helper.SendSuccess(c, "Review updated successfully", review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid review ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.reviewService.DeleteReview(uint(id)); err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), h.Helper.GetStatusCode(err), `reviewError`)
		return
	}

	h.Helper.SendSuccess(c, "Review deleted successfully", h.Helper.EmptyJsonMap())
}
