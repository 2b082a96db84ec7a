// internal/handlers/report_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type resolveReportRequest struct {
	AdminNotes string `json:"admin_notes" validate:"required"`
}

type rejectReportRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	params := utils.GetPaginationParams(c, 8)

	items, total, page, err := h.reportService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyReportNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

func (h *ReportHandler) ResolveReport(c *gin.Context) {
	var req resolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	report, err := h.reportService.Resolve(c.Request.Context(), c.Param("id"), req.AdminNotes)
	if err != nil {
		respondServiceError(c, err, i18n.KeyReportNotFound)
		return
	}

	utils.SuccessResponse(c, report)
}

func (h *ReportHandler) RejectReport(c *gin.Context) {
	var req rejectReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	report, err := h.reportService.Reject(c.Request.Context(), c.Param("id"), req.RejectionReason)
	if err != nil {
		respondServiceError(c, err, i18n.KeyReportNotFound)
		return
	}

	utils.SuccessResponse(c, report)
}
