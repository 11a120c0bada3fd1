package handlers

import (
	"strconv"

	"confhub-api/helper"
	"confhub-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(authService services.AuthService) *UserHandler {
	return &UserHandler{authService: authService, Helper: &helper.HTTPHelper{}}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.authService.GetUsers()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}
