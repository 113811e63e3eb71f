package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studentboard/internal/service"
)

// SearchHandler handles the cross-collection search endpoint.
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search godoc
// @Summary Search across collections
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param query query string true "Substring to match, case-insensitive"
// @Param type query string false "Restrict to one resource type"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	results, err := h.searchService.Search(
		c.Request().Context(),
		c.QueryParam("query"),
		c.QueryParam("type"),
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, results)
}
