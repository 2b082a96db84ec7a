// internal/handlers/starterpack_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type StarterPackHandler struct {
	starterPackService *services.StarterPackService
}

func NewStarterPackHandler(starterPackService *services.StarterPackService) *StarterPackHandler {
	return &StarterPackHandler{starterPackService: starterPackService}
}

func (h *StarterPackHandler) ListStarterPacks(c *gin.Context) {
	params := utils.GetPaginationParams(c, 8)

	items, total, page, err := h.starterPackService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyUpstreamUnavailable)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

func (h *StarterPackHandler) CreateStarterPack(c *gin.Context) {
	var input services.StarterPackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	pack, err := h.starterPackService.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, i18n.KeyUpstreamUnavailable)
		return
	}

	utils.CreatedResponse(c, pack)
}
