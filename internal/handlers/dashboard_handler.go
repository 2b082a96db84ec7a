// internal/handlers/dashboard_handler.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type DashboardHandler struct {
	statsService *services.StatsService
	feed         *controller.Feed
}

func NewDashboardHandler(statsService *services.StatsService, feed *controller.Feed) *DashboardHandler {
	return &DashboardHandler{statsService: statsService, feed: feed}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	utils.SuccessResponse(c, h.statsService.GetDashboardStats(c.Request.Context()))
}

// ListNotifications serves the recent failed-mutation feed so rolled-back
// changes are visible to the operator.
func (h *DashboardHandler) ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	utils.SuccessResponse(c, h.feed.Recent(limit))
}
