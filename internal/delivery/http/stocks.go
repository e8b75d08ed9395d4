package http

import (
	"errors"
	"net/http"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/service"
	"stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *handler) ListStocks(c echo.Context) error {
	summaries, err := h.service.MarketService.ListStocks(c.Request().Context())
	if err != nil {
		h.log.Error("list stocks", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to list stocks", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", summaries))
}

func (h *handler) Trending(c echo.Context) error {
	summaries, err := h.service.MarketService.Trending(c.Request().Context())
	if err != nil {
		h.log.Error("trending stocks", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load trending stocks", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", summaries))
}

func (h *handler) GetStock(c echo.Context) error {
	detail, err := h.service.MarketService.GetDetail(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		return h.stockError(c, err, "get stock")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", detail))
}

func (h *handler) GetRating(c echo.Context) error {
	rating, err := h.service.MarketService.GetRating(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		return h.stockError(c, err, "get rating")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", rating))
}

func (h *handler) GetPrediction(c echo.Context) error {
	prediction, err := h.service.MarketService.GetPrediction(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		return h.stockError(c, err, "get prediction")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", prediction))
}

func (h *handler) GetRecommendation(c echo.Context) error {
	rec, err := h.service.MarketService.GetRecommendation(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		return h.stockError(c, err, "get recommendation")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", rec))
}

func (h *handler) stockError(c echo.Context, err error, op string) error {
	if errors.Is(err, service.ErrStockNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("stock not found"))
	}
	h.log.Error(op, logger.ErrorField(err), logger.StringField("ticker", c.Param("ticker")))
	return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "internal error", nil))
}
