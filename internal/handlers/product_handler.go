// internal/handlers/product_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type updateProductStatusRequest struct {
	Status string `json:"status" validate:"required,product_status"`
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c, 8)

	items, total, page, err := h.productService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.productService.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}
	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) UpdateProductStatus(c *gin.Context) {
	var req updateProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	product, err := h.productService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyProductDeleted)})
}
