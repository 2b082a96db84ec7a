// internal/handlers/user_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c, 20)

	items, total, page, err := h.userService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := h.userService.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		return
	}
	utils.SuccessResponse(c, user)
}

// ListSellers serves the seller subset used by the starter-pack builder.
func (h *UserHandler) ListSellers(c *gin.Context) {
	sellers, err := h.userService.Sellers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, i18n.KeyUserNotFound)
		return
	}
	utils.SuccessResponse(c, sellers)
}

func (h *UserHandler) SuspendUser(c *gin.Context) {
	user, err := h.userService.Suspend(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, i18n.KeyUserNotFound)
		return
	}
	utils.SuccessResponse(c, user)
}
