package http

import (
	"net/http"

	"stock-advisor/config"
	"stock-advisor/internal/service"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type handler struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *validator.Validate
	service   *service.Service
}

// SetupRoutes registers the REST API on the echo instance.
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	log *logger.Logger,
	v *validator.Validate,
	svc *service.Service,
) {
	h := &handler{
		cfg:       cfg,
		log:       log,
		validator: v,
		service:   svc,
	}

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	stocks := api.Group("/stocks")
	stocks.GET("", h.ListStocks)
	stocks.GET("/trending", h.Trending)
	stocks.GET("/:ticker", h.GetStock)
	stocks.GET("/:ticker/rating", h.GetRating)
	stocks.GET("/:ticker/prediction", h.GetPrediction)
	stocks.GET("/:ticker/recommendation", h.GetRecommendation)

	advisor := api.Group("/advisor")
	advisor.GET("/welcome", h.AdvisorWelcome)
	advisor.POST("/chat", h.AdvisorChat,
		middleware.NewRateLimiterMiddleware(cfg.API.ChatRatePerSecond, cfg.API.ChatBurst))

	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
}

// requestLogger stores a request-scoped logger in the request context so the
// services' *Context log methods carry the request id.
func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLog := log.With(logger.StringField("request_id", reqID))
			ctx := logger.NewContext(c.Request().Context(), reqLog)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (h *handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
