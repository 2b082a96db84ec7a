// internal/handlers/category_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type renameCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type archiveCategoryRequest struct {
	Archived *bool `json:"archived" validate:"required"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	params := utils.GetPaginationParams(c, 8)

	items, total, page, err := h.categoryService.List(c.Request.Context(), params.Search, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(items, int64(total), page, params.Limit))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, ok := h.categoryService.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		return
	}
	utils.SuccessResponse(c, category)
}

// CreateCategory accepts a multipart form: a name field plus an optional
// image file.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	input := services.CategoryInput{Name: c.PostForm("name")}

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

	category, err := h.categoryService.Create(c.Request.Context(), input, file, header)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.CreatedResponse(c, category)
}

func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	var req renameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	category, err := h.categoryService.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, category)
}

func (h *CategoryHandler) SetCategoryArchived(c *gin.Context) {
	var req archiveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	category, err := h.categoryService.SetArchived(c.Request.Context(), c.Param("id"), *req.Archived)
	if err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyCategoryDeleted)})
}
