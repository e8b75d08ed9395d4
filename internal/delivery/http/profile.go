package http

import (
	"net/http"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *handler) GetProfile(c echo.Context) error {
	profile, err := h.service.ProfileService.Get(c.Request().Context())
	if err != nil {
		h.log.Error("get profile", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "internal error", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", profile))
}

func (h *handler) UpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	updated, err := h.service.ProfileService.Update(c.Request().Context(), &req, time.Now())
	if err != nil {
		h.log.Error("update profile", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "internal error", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("profile updated", updated))
}
