package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photographerlagbe/marketplace-api/internal/api/metrics"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// DirectoryHandler serves the public photographer directory. No auth.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// List handles GET /photographers.
//
// @Summary      List photographers
// @Tags         directory
// @Produce      json
// @Param        page            query     int     false  "Page number (1-based)"
// @Param        limit           query     int     false  "Page size"
// @Param        city            query     string  false  "City substring, case-insensitive"
// @Param        specialization  query     string  false  "Exact specialization"
// @Param        min_rate        query     number  false  "Minimum hourly rate"
// @Param        max_rate        query     number  false  "Maximum hourly rate"
// @Param        sort_by         query     string  false  "created_at | hourly_rate | experience | rating | business_name"
// @Param        sort_order      query     string  false  "asc | desc"
// @Success      200  {object}  directoryResponse
// @Router       /photographers [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	q := ports.DirectoryQuery{
		City:           c.QueryParam("city"),
		Specialization: c.QueryParam("specialization"),
		SortBy:         c.QueryParam("sort_by"),
		SortOrder:      c.QueryParam("sort_order"),
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.PageSize, _ = strconv.Atoi(c.QueryParam("limit"))
	if v, err := strconv.ParseFloat(c.QueryParam("min_rate"), 64); err == nil {
		q.MinRate = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_rate"), 64); err == nil {
		q.MaxRate = &v
	}

	start := time.Now()
	page, err := h.directory.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	metrics.DirectoryQueryDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toDirectoryResponse(page))
}

// GetByID handles GET /photographers/:id.
//
// @Summary      Get a photographer by id
// @Tags         directory
// @Produce      json
// @Param        id   path      string  true  "Photographer id"
// @Success      200  {object}  profileResponse
// @Failure      404  {object}  map[string]string
// @Router       /photographers/{id} [get]
func (h *DirectoryHandler) GetByID(c echo.Context) error {
	item, err := h.directory.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(item))
}
