package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"confhub-api/models"
	"confhub-api/services"

	"github.com/gin-gonic/gin"
)

type PaperHandler struct {
	paperService services.PaperService
}

func NewPaperHandler(paperService services.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

func (h *PaperHandler) SubmitPaper(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.SubmitPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paper, err := h.paperService.SubmitPaper(req, userID.(uint))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, paper)
}

func (h *PaperHandler) GetPapers(c *gin.Context) {
	var params models.PaperListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	papers, total, err := h.paperService.GetPapers(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"papers": papers,
		"total":  total,
		"page":   params.Page,
		"limit":  params.Limit,
	})
}

func (h *PaperHandler) GetPaper(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	paper, err := h.paperService.GetPaper(uint(id))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, paper)
}

func (h *PaperHandler) DeletePaper(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	if err := h.paperService.DeletePaper(uint(id)); err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paper deleted successfully"})
}

func (h *PaperHandler) UploadNewVersion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var req models.UploadVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paper, err := h.paperService.UploadNewVersion(uint(id), req.VersionLink)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, paper)
}

// SubmitReview upserts the authenticated caller's review for the paper. The
// reviewer identity comes from the token, not the request body.
func (h *PaperHandler) SubmitReview(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.paperService.SubmitOrUpdateReview(uint(id), userID.(uint), req.Verdict, req.Comments)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *PaperHandler) sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientReviewers):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
