// File: internal/handler/admin/mechanics.go
package admin

import (
	"errors"
	"net/http"
	"strconv"

	"motofix-admin/internal/api"
	"motofix-admin/internal/config"
	"motofix-admin/internal/database"
	"motofix-admin/internal/model"
	"motofix-admin/internal/query"
	"motofix-admin/internal/service"
	"motofix-admin/internal/store"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 50

// ListMechanicsHandler lists mechanics with optional verified filter and
// fuzzy search over name, phone and location.
// @Summary     List mechanics
// @Tags        admin
// @Produce     json
// @Param       verified  query bool   false "filter by verification state"
// @Param       search    query string false "fuzzy search over name/phone/location"
// @Param       page      query int    false "page number (default 1)"
// @Param       page_size query int    false "items per page (default 50, max 500)"
// @Success     200 {object} api.MechanicListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/mechanics [get]
func ListMechanicsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListMechanicsRequest
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
		if req.Verified != nil {
			f.Equals("is_verified", *req.Verified)
		}
		if req.Search != "" {
			f.Fuzzy(req.Search, "name", "phone", "location")
		}

		ctx := c.Request().Context()
		total, err := countMechanics(ctx, db, f)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}

		mechanics, err := listMechanics(ctx, db, f, query.NewPage(req.Page, req.PageSize))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}

		data := make([]api.MechanicResponse, 0, len(mechanics))
		for _, m := range mechanics {
			data = append(data, api.NewMechanicResponse(m))
		}
		pg := query.NewPagination(req.Page, req.PageSize, total)
		return c.JSON(http.StatusOK, api.MechanicListResponse{
			Data:       data,
			Page:       pg.Page,
			PageSize:   pg.PageSize,
			Total:      pg.TotalItems,
			TotalPages: pg.TotalPages,
		})
	}
}

// CreateMechanicHandler registers a mechanic with the phone in canonical
// form, rating 0 and no completed jobs.
// @Summary     Create a mechanic
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateMechanicRequest true "mechanic payload"
// @Success     201 {object} api.MechanicResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/mechanics [post]
func CreateMechanicHandler(db database.DB, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateMechanicRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		mechanic, err := createMechanic(c.Request().Context(), db, &model.Mechanic{
			Phone:      service.NormalizePhone(cfg.PhoneCountryCode, req.Phone),
			Name:       req.Name,
			Location:   req.Location,
			IsVerified: req.IsVerified,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicatePhone) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "phone already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}

		return c.JSON(http.StatusCreated, api.NewMechanicResponse(*mechanic))
	}
}

// UpdateMechanicHandler applies a partial update from the typed field set.
// @Summary     Update a mechanic
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id      path int                       true "mechanic ID"
// @Param       payload body api.UpdateMechanicRequest true "fields to change"
// @Success     200 {object} api.MechanicResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/mechanics/{id} [patch]
func UpdateMechanicHandler(db database.DB, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid mechanic ID"})
		}

		var req api.UpdateMechanicRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.IsEmpty() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no fields to update"})
		}

		patch := store.MechanicPatch{
			Name:          req.Name,
			Location:      req.Location,
			IsVerified:    req.IsVerified,
			Rating:        req.Rating,
			JobsCompleted: req.JobsCompleted,
		}
		if req.Phone != nil {
			normalized := service.NormalizePhone(cfg.PhoneCountryCode, *req.Phone)
			patch.Phone = &normalized
		}

		mechanic, err := updateMechanic(c.Request().Context(), db, id, patch)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyUpdate):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no fields to update"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "mechanic not found"})
			case errors.Is(err, store.ErrDuplicatePhone):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "phone already registered"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
			}
		}

		return c.JSON(http.StatusOK, api.NewMechanicResponse(*mechanic))
	}
}

// DeleteMechanicHandler removes a mechanic by id.
// @Summary     Delete a mechanic
// @Tags        admin
// @Produce     json
// @Param       id path int true "mechanic ID"
// @Success     200 {object} api.ErrorResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/mechanics/{id} [delete]
func DeleteMechanicHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid mechanic ID"})
		}
		if err := deleteMechanic(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "mechanic not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "query failed"})
		}
		return c.JSON(http.StatusOK, api.ErrorResponse{Message: "mechanic deleted"})
	}
}
