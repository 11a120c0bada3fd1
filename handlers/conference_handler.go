package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"confhub-api/models"
	"confhub-api/services"

	"github.com/gin-gonic/gin"
)

type ConferenceHandler struct {
	conferenceService services.ConferenceService
}

func NewConferenceHandler(conferenceService services.ConferenceService) *ConferenceHandler {
	return &ConferenceHandler{conferenceService: conferenceService}
}

func (h *ConferenceHandler) CreateConference(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conference, err := h.conferenceService.CreateConference(req, userID.(uint))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conference)
}

func (h *ConferenceHandler) GetConferences(c *gin.Context) {
	conferences, err := h.conferenceService.GetConferences()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, conferences)
}

func (h *ConferenceHandler) GetConference(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference ID"})
		return
	}

	conference, err := h.conferenceService.GetConference(uint(id))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, conference)
}

func (h *ConferenceHandler) UpdateConference(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference ID"})
		return
	}

	var req models.UpdateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conference, err := h.conferenceService.UpdateConference(uint(id), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, conference)
}

func (h *ConferenceHandler) DeleteConference(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference ID"})
		return
	}

	if err := h.conferenceService.DeleteConference(uint(id)); err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conference deleted successfully"})
}

func (h *ConferenceHandler) AssignReviewers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference ID"})
		return
	}

	var req models.AssignReviewersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewers, err := h.conferenceService.AssignReviewers(uint(id), req.ReviewerIDs)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviewers)
}

func (h *ConferenceHandler) GetConferencePapers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference ID"})
		return
	}

	papers, err := h.conferenceService.GetConferencePapers(uint(id))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, papers)
}

func (h *ConferenceHandler) sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrOrganizerNotAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotAReviewer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
