// internal/handlers/verification_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type VerificationHandler struct {
	verificationService *services.VerificationService
}

func NewVerificationHandler(verificationService *services.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

func (h *VerificationHandler) ListVerifications(c *gin.Context) {
	params := utils.GetPaginationParams(c, 8)

	items, total, page, err := h.verificationService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyVerificationNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

func (h *VerificationHandler) ApproveVerification(c *gin.Context) {
	verification, err := h.verificationService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, i18n.KeyVerificationNotFound)
		return
	}
	utils.SuccessResponse(c, verification)
}

func (h *VerificationHandler) RejectVerification(c *gin.Context) {
	verification, err := h.verificationService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, i18n.KeyVerificationNotFound)
		return
	}
	utils.SuccessResponse(c, verification)
}
