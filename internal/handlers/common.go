// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/i18n"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

// respondServiceError maps service-layer failures onto the response envelope.
// notFoundKey is the resource-specific i18n key used for missing items.
func respondServiceError(c *gin.Context, err error, notFoundKey string) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, controller.ErrNotFound):
		utils.NotFoundResponse(c, notFoundKey)
	case errors.Is(err, controller.ErrMutationInFlight):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyMutationInFlight))
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			utils.NotFoundResponse(c, notFoundKey)
			return
		}
		utils.BadGatewayResponse(c, "")
	}
}
