package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"studentboard/internal/auth"
	apperrors "studentboard/internal/errors"
	"studentboard/internal/metrics"
	"studentboard/internal/registry"
	"studentboard/internal/service"
)

// ResourceHandler is the generic CRUD dispatcher. Every /api/:type route
// resolves the type segment through the registry; unknown types never reach
// a store.
type ResourceHandler struct {
	reg        *registry.Registry
	archiveSvc *service.ArchiveService
}

// NewResourceHandler creates the dispatcher.
func NewResourceHandler(reg *registry.Registry, archiveSvc *service.ArchiveService) *ResourceHandler {
	return &ResourceHandler{reg: reg, archiveSvc: archiveSvc}
}

func (h *ResourceHandler) actor(c echo.Context) string {
	if claims, ok := auth.ClaimsFrom(c); ok {
		return claims.Subject
	}
	return ""
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "VALIDATION_ERROR",
		})
	}
	return uint(id), nil
}

// List godoc
// @Summary List a collection
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type path string true "Resource type" Enums(students, announcements, events, timetable, results, archive)
// @Param item_type query string false "Archive only: filter by archived item type"
// @Param from query string false "Archive only: archived-at lower bound (YYYY-MM-DD)"
// @Param to query string false "Archive only: archived-at upper bound (YYYY-MM-DD)"
// @Success 200 {array} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/{type} [get]
func (h *ResourceHandler) List(c echo.Context) error {
	kind, store, err := h.reg.Lookup(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	metrics.ResourceOps.WithLabelValues(string(kind), "list").Inc()

	ctx := c.Request().Context()

	if kind == registry.KindArchive {
		itemType := c.QueryParam("item_type")
		from := c.QueryParam("from")
		to := c.QueryParam("to")
		if itemType != "" || from != "" || to != "" {
			records, err := h.archiveSvc.ListFiltered(ctx, itemType, from, to)
			if err != nil {
				return httpError(err)
			}
			return c.JSON(http.StatusOK, records)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Create godoc
// @Summary Create a record in a collection
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Resource type"
// @Param request body map[string]interface{} true "Record fields"
// @Success 201 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/{type} [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	kind, store, err := h.reg.Lookup(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	metrics.ResourceOps.WithLabelValues(string(kind), "create").Inc()

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	record, err := store.Create(c.Request().Context(), fields, h.actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// Get godoc
// @Summary Get a record by id
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type path string true "Resource type"
// @Param id path int true "Record ID"
// @Success 200 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/{type}/{id} [get]
func (h *ResourceHandler) Get(c echo.Context) error {
	kind, store, err := h.reg.Lookup(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	metrics.ResourceOps.WithLabelValues(string(kind), "get").Inc()

	record, err := store.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Update godoc
// @Summary Partially update a record
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Resource type"
// @Param id path int true "Record ID"
// @Param request body map[string]interface{} true "Fields to update"
// @Success 200 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/{type}/{id} [put]
func (h *ResourceHandler) Update(c echo.Context) error {
	kind, store, err := h.reg.Lookup(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	metrics.ResourceOps.WithLabelValues(string(kind), "update").Inc()

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	record, err := store.Update(c.Request().Context(), id, fields)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a record by id
// @Tags resources
// @Security BearerAuth
// @Param type path string true "Resource type"
// @Param id path int true "Record ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/{type}/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	kind, store, err := h.reg.Lookup(c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	metrics.ResourceOps.WithLabelValues(string(kind), "delete").Inc()

	if err := store.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Archive godoc
// @Summary Archive a board item
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type path string true "Resource type"
// @Param id path int true "Record ID"
// @Success 201 {object} model.ArchiveRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/{type}/{id}/archive [post]
func (h *ResourceHandler) Archive(c echo.Context) error {
	typeName := c.Param("type")
	id, err := parseID(c)
	if err != nil {
		return err
	}
	metrics.ResourceOps.WithLabelValues(typeName, "archive").Inc()

	record, err := h.archiveSvc.ArchiveItem(c.Request().Context(), typeName, id, h.actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, record)
}
