package lens

import (
	"bytes"
	"net/http"

	"flightlens/internal/middleware"
	"flightlens/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WebHandler serves the single-page UI. Every request gets a fresh Session.
type WebHandler struct {
	fetcher Fetcher
	logger  logger.Logger
}

func NewWebHandler(fetcher Fetcher, log logger.Logger) *WebHandler {
	return &WebHandler{
		fetcher: fetcher,
		logger:  log,
	}
}

func (h *WebHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.IndexHandler)
}

// IndexHandler renders the form, and the lookup result when ?flight= is present.
// ?format=text switches to the free-text variant.
func (h *WebHandler) IndexHandler(c *gin.Context) {
	log := middleware.Logger(c, h.logger)
	session := NewSession()

	if raw := c.Query("flight"); raw != "" {
		if err := h.lookup(c, session, raw); err != nil {
			// Only an all-whitespace query gets here; render the idle form.
			log.Debug("lookup not started", logger.Err(err))
		}
	}

	view := session.Snapshot()
	log.Info("rendering page",
		logger.Field{Key: "phase", Value: view.Phase.String()},
		logger.Field{Key: "flight_number", Value: view.Query},
	)

	var buf bytes.Buffer
	if err := RenderHTML(&buf, view); err != nil {
		log.Error("failed to render page", logger.Err(err))
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *WebHandler) lookup(c *gin.Context, session *Session, raw string) error {
	if err := session.Input(raw); err != nil {
		return err
	}
	if c.Query("format") == "text" {
		return session.RunText(c.Request.Context(), h.fetcher)
	}
	return session.Run(c.Request.Context(), h.fetcher)
}
