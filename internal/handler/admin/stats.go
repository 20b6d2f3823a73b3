// File: internal/handler/admin/stats.go
package admin

import (
	"net/http"
	"time"

	"motofix-admin/internal/api"
	"motofix-admin/internal/database"

	"github.com/labstack/echo/v4"
)

const defaultChartDays = 30

var timeNow = time.Now

// StatsHandler answers the dashboard aggregate block.
// @Summary     Dashboard statistics
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.StatsResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := gatherStats(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}
		return c.JSON(http.StatusOK, api.StatsResponse{
			DashboardStats: *stats,
			AsOf:           timeNow().UTC(),
		})
	}
}

// RevenueChartHandler returns recent daily revenue points for successful
// collection payments. The store hands back the most recent N days newest
// first; charting wants them oldest first, so the slice is reversed here.
// @Summary     Revenue chart
// @Tags        admin
// @Produce     json
// @Param       limit query int false "number of days (default 30)"
// @Success     200 {array}  store.RevenuePoint
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/dashboard/revenue-chart [get]
func RevenueChartHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RevenueChartRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Limit == 0 {
			req.Limit = defaultChartDays
		}

		points, err := revenueChart(c.Request().Context(), db, req.Limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}

		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
		return c.JSON(http.StatusOK, points)
	}
}
