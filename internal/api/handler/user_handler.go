package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photographerlagbe/marketplace-api/internal/api/metrics"
	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// UserHandler serves self-service identity routes for any authenticated role.
type UserHandler struct {
	users ports.UserService
	media ports.MediaService
}

func NewUserHandler(users ports.UserService, media ports.MediaService) *UserHandler {
	return &UserHandler{users: users, media: media}
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type updateMeRequest struct {
	Name    *string         `json:"name,omitempty"`
	Phone   *string         `json:"phone,omitempty"`
	Address *addressRequest `json:"address,omitempty"`
}

type meResponse struct {
	User         *domain.User         `json:"user"`
	Photographer *domain.Photographer `json:"photographer,omitempty"`
}

type pictureResponse struct {
	ProfilePicture string `json:"profile_picture"`
}

// GetMe handles GET /users/me.
//
// @Summary      Get own identity
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.users.GetMe(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: view.User, Photographer: view.Photographer})
}

// UpdateMe handles PUT /users/me. Email, role and password are not editable
// through this route.
//
// @Summary      Update own identity
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateMeRequest  true  "Fields to update"
// @Success      200   {object}  meResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateMeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	upd := ports.UserUpdate{Name: req.Name, Phone: req.Phone}
	if req.Address != nil {
		upd.Address = &domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		}
	}

	user, err := h.users.UpdateMe(c.Request().Context(), userID, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: user})
}

// UploadPicture handles POST /users/me/picture (multipart). The new picture
// replaces the previous reference; nothing is appended.
//
// @Summary      Replace profile picture
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file (max 5 MiB, jpeg/png/gif/webp)"
// @Success      200    {object}  pictureResponse
// @Failure      400    {object}  map[string]string
// @Router       /users/me/picture [post]
func (h *UserHandler) UploadPicture(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var upload *ports.MediaUpload
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
		}
		defer file.Close()
		upload = &ports.MediaUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		}
	}

	url, err := h.media.UploadProfilePicture(c.Request().Context(), userID, upload)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.UploadsRejectedTotal.Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, pictureResponse{ProfilePicture: url})
}
