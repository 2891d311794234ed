package handler

import (
	"net/http"

	"address-autocomplete/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// WidgetConfig is what the page hands to the Places autocomplete widget.
type WidgetConfig struct {
	APIKey  string
	Country string
	Types   []string
}

type pageField struct {
	Name  string
	Label string
	Value string
	Error string
}

// PageHandler renders the address form page
type PageHandler struct {
	service FormService
	widget  WidgetConfig
}

func NewPageHandler(svc FormService, widget WidgetConfig) *PageHandler {
	return &PageHandler{service: svc, widget: widget}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), session(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to load form for page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	fields := make([]pageField, 0, len(models.Fields))
	for _, f := range models.Fields {
		fields = append(fields, pageField{
			Name:  string(f),
			Label: f.Label(),
			Value: view.Values.Get(f),
			Error: view.VisibleErrors[f],
		})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"APIKey":  h.widget.APIKey,
		"Country": h.widget.Country,
		"Types":   h.widget.Types,
		"Fields":  fields,
	})
}
