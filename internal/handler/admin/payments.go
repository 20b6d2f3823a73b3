// File: internal/handler/admin/payments.go
package admin

import (
	"net/http"

	"motofix-admin/internal/api"
	"motofix-admin/internal/config"
	"motofix-admin/internal/database"
	"motofix-admin/internal/query"
	"motofix-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// ListPaymentsHandler pages through payments. Phone search accepts any of
// the +256, 0 or bare local formats; the value is normalized before it is
// bound, the search echo keeps what was submitted.
// @Summary     List payments
// @Tags        admin
// @Produce     json
// @Param       phone     query string false "search by phone, any format"
// @Param       type      query string false "collection or payout"
// @Param       status    query string false "success, pending or failed"
// @Param       page      query int    false "page number (default 1)"
// @Param       page_size query int    false "items per page (default 50, max 500)"
// @Success     200 {object} api.PaymentListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/payments [get]
func ListPaymentsHandler(db database.DB, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListPaymentsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Page == 0 {
			req.Page = 1
		}
		if req.PageSize == 0 {
			req.PageSize = defaultPageSize
		}

		f := &query.Filters{}
		if req.Phone != "" {
			f.Equals("phone", service.NormalizePhone(cfg.PhoneCountryCode, req.Phone))
		}
		if req.Type != "" {
			f.Equals("type", req.Type)
		}
		if req.Status != "" {
			f.Equals("status", req.Status)
		}

		ctx := c.Request().Context()
		total, err := countPayments(ctx, db, f)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}

		payments, err := listPayments(ctx, db, f, query.NewPage(req.Page, req.PageSize))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}

		return c.JSON(http.StatusOK, api.PaymentListResponse{
			Data:       payments,
			Pagination: query.NewPagination(req.Page, req.PageSize, total),
			Search: api.PaymentSearch{
				Phone:  optional(req.Phone),
				Type:   optional(req.Type),
				Status: optional(req.Status),
			},
		})
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
