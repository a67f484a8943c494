package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photographerlagbe/marketplace-api/internal/api/metrics"
	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// PhotographerHandler serves the photographer-role profile and portfolio
// routes. Every route sits behind the Auth and RequireRole middleware.
type PhotographerHandler struct {
	profiles ports.PhotographerService
	media    ports.MediaService
}

func NewPhotographerHandler(profiles ports.PhotographerService, media ports.MediaService) *PhotographerHandler {
	return &PhotographerHandler{profiles: profiles, media: media}
}

// CreateProfile handles POST /photographers/profile.
//
// @Summary      Create photographer profile
// @Tags         photographers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile details"
// @Success      201   {object}  profileResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /photographers/profile [post]
func (h *PhotographerHandler) CreateProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.profiles.CreateProfile(c.Request().Context(), userID, toCreateProfileInput(req))
	if err != nil {
		return err
	}

	metrics.ProfilesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProfileResponse(view))
}

// GetProfile handles GET /photographers/profile.
//
// @Summary      Get own photographer profile
// @Tags         photographers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      404  {object}  map[string]string
// @Router       /photographers/profile [get]
func (h *PhotographerHandler) GetProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.profiles.GetOwnProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(view))
}

// UpdateProfile handles PUT /photographers/profile. Only supplied fields are
// touched; the rest keep their stored values.
//
// @Summary      Update photographer profile
// @Tags         photographers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /photographers/profile [put]
func (h *PhotographerHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.profiles.UpdateProfile(c.Request().Context(), userID, toProfileUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(view))
}

// UploadWork handles POST /photographers/upload-work (multipart).
//
// @Summary      Upload a portfolio work
// @Tags         photographers
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image        formData  file    true   "Image file (max 5 MiB, jpeg/png/gif/webp)"
// @Param        category     formData  string  true   "Portfolio category"
// @Param        title        formData  string  false  "Title"
// @Param        description  formData  string  false  "Description"
// @Success      201  {object}  portfolioItemResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /photographers/upload-work [post]
func (h *PhotographerHandler) UploadWork(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input := ports.WorkUploadInput{
		Category:    c.FormValue("category"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	fileHeader, err := c.FormFile("image")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
		}
		defer file.Close()
		input.File = &ports.MediaUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		}
	}

	item, err := h.media.UploadWork(c.Request().Context(), userID, input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.UploadsRejectedTotal.Inc()
		}
		return err
	}

	metrics.PortfolioUploadsTotal.WithLabelValues(string(item.Category)).Inc()
	return c.JSON(http.StatusCreated, portfolioItemResponse{Item: *item})
}

// RemovePortfolioItem handles DELETE /photographers/portfolio/:itemId.
//
// @Summary      Remove a portfolio item
// @Tags         photographers
// @Produce      json
// @Security     BearerAuth
// @Param        itemId  path      string  true  "Portfolio item id"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  map[string]string
// @Router       /photographers/portfolio/{itemId} [delete]
func (h *PhotographerHandler) RemovePortfolioItem(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.profiles.RemovePortfolioItem(c.Request().Context(), userID, c.Param("itemId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "portfolio item removed"})
}
