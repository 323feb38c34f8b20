package flight

import (
	"errors"
	"fmt"
	"net/http"

	"flightlens/internal/middleware"
	"flightlens/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service *Service
	logger  logger.Logger
}

func NewFlightHandler(s *Service, log logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: s,
		logger:  log,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/api/gemini", h.GeminiHandler)
}

// GeminiHandler godoc
// @Summary      Forward a flight prompt to Gemini
// @Description  Accepts a pre-built prompt (with optional output schema) or a bare flight number, and relays the model's raw text.
// @Tags         gemini
// @Accept       json
// @Produce      json
// @Param        request body ProxyRequest true "Prompt or flight number"
// @Success      200 {object} ProxyResponse
// @Failure      400 {object} ErrorResponse "Prompt is required"
// @Failure      500 {object} ErrorResponse "API key not configured, unreadable body, or provider failure"
// @Router       /api/gemini [post]
func (h *FlightHandler) GeminiHandler(c *gin.Context) {
	log := middleware.Logger(c, h.logger)

	var req ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("failed to decode request body", logger.Err(err))
		sendError(c, internalError(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	text, err := h.service.Complete(c.Request.Context(), req, log)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResponse{Data: text})
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		resp := ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			resp.Details = appErr.Err.Error()
		}
		c.JSON(appErr.Status, resp)
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Code:    ErrorCodeInternalFailure,
		Details: err.Error(),
	})
}
