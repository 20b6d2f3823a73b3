// File: internal/handler/admin/requests.go
package admin

import (
	"net/http"

	"motofix-admin/internal/api"
	"motofix-admin/internal/database"
	"motofix-admin/internal/query"

	"github.com/labstack/echo/v4"
)

const defaultRequestLimit = 100

// ListRequestsHandler lists service requests, newest first.
// @Summary     List service requests
// @Tags        admin
// @Produce     json
// @Param       status query string false "filter by status"
// @Param       limit  query int    false "max rows (default 100)"
// @Success     200 {array}  model.ServiceRequest
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/requests [get]
func ListRequestsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListRequestsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Limit == 0 {
			req.Limit = defaultRequestLimit
		}

		f := &query.Filters{}
		if req.Status != "" {
			f.Equals("status", req.Status)
		}

		requests, err := listServiceRequests(c.Request().Context(), db, f, req.Limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}
		return c.JSON(http.StatusOK, requests)
	}
}
