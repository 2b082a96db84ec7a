// internal/handlers/banner_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type BannerHandler struct {
	bannerService *services.BannerService
}

func NewBannerHandler(bannerService *services.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

type setBannerActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

func (h *BannerHandler) ListBanners(c *gin.Context) {
	params := utils.GetPaginationParams(c, 8)

	items, total, page, err := h.bannerService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyBannerNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

// CreateBanner accepts a multipart form: banner fields plus an image file.
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	input := services.BannerInput{
		Title:     c.PostForm("title"),
		Type:      c.PostForm("type"),
		Device:    c.PostForm("device"),
		Position:  c.PostForm("position"),
		StartDate: c.PostForm("start_date"),
		EndDate:   c.PostForm("end_date"),
	}

	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		file, header = nil, nil
	} else {
		defer file.Close()
	}

	banner, err := h.bannerService.Create(c.Request.Context(), input, file, header)
	if err != nil {
		respondServiceError(c, err, i18n.KeyBannerNotFound)
		return
	}

	utils.CreatedResponse(c, banner)
}

func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	var input services.BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	banner, err := h.bannerService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err, i18n.KeyBannerNotFound)
		return
	}

	utils.SuccessResponse(c, banner)
}

func (h *BannerHandler) SetBannerActive(c *gin.Context) {
	var req setBannerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	banner, err := h.bannerService.SetActive(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		respondServiceError(c, err, i18n.KeyBannerNotFound)
		return
	}

	utils.SuccessResponse(c, banner)
}

func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	if err := h.bannerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, i18n.KeyBannerNotFound)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyBannerDeleted)})
}
