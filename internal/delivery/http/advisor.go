package http

import (
	"net/http"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *handler) AdvisorWelcome(c echo.Context) error {
	resp, err := h.service.AdvisorService.Welcome(c.Request().Context())
	if err != nil {
		h.log.Error("advisor welcome", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "internal error", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", resp))
}

func (h *handler) AdvisorChat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		h.log.WarnContext(c.Request().Context(), "rejected chat request", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	resp, err := h.service.AdvisorService.Chat(c.Request().Context(), req.Message)
	if err != nil {
		h.log.Error("advisor chat", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "internal error", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", resp))
}
