package handler

import (
	"context"
	"errors"
	"net/http"

	"address-autocomplete/internal/form"
	"address-autocomplete/internal/models"
	"address-autocomplete/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FormHandler serves the per-session address form endpoints
type FormHandler struct {
	service FormService
}

// Service interface for dependency injection
type FormService interface {
	View(ctx context.Context, session string) (form.View, error)
	SelectPlace(ctx context.Context, session string, place models.Place) (form.View, error)
	UpdateField(ctx context.Context, session string, field models.Field, value string) (form.View, error)
	TouchField(ctx context.Context, session string, field models.Field) (form.View, error)
	Submit(ctx context.Context, session string) (models.AddressRecord, error)
}

type fieldUpdate struct {
	Value *string `json:"value" binding:"required"`
}

// NewFormHandler creates a new form handler
func NewFormHandler(svc FormService) *FormHandler {
	return &FormHandler{service: svc}
}

// View handles GET /form
//
//	@Summary	Current form state for the session
//	@Produce	json
//	@Success	200	{object}	form.View
//	@Router		/form [get]
func (h *FormHandler) View(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), session(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectPlace handles POST /form/place
//
//	@Summary	Replace the form with a selected place
//	@Accept		json
//	@Produce	json
//	@Param		place	body		models.Place	true	"place from the autocomplete widget"
//	@Success	200		{object}	form.View
//	@Failure	400		{object}	map[string]string
//	@Router		/form/place [post]
func (h *FormHandler) SelectPlace(c *gin.Context) {
	var place models.Place
	if err := c.ShouldBindJSON(&place); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place payload"})
		return
	}

	view, err := h.service.SelectPlace(c.Request.Context(), session(c), place)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateField handles PATCH /form/fields/:field
//
//	@Summary	Edit one field
//	@Accept		json
//	@Produce	json
//	@Param		field	path		string	true	"field name"
//	@Success	200		{object}	form.View
//	@Failure	400		{object}	map[string]string
//	@Router		/form/fields/{field} [patch]
func (h *FormHandler) UpdateField(c *gin.Context) {
	var body fieldUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required body field 'value'"})
		return
	}

	view, err := h.service.UpdateField(c.Request.Context(), session(c), models.Field(c.Param("field")), *body.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// TouchField handles POST /form/fields/:field/touch
//
//	@Summary	Mark a field as visited
//	@Produce	json
//	@Param		field	path		string	true	"field name"
//	@Success	200		{object}	form.View
//	@Failure	400		{object}	map[string]string
//	@Router		/form/fields/{field}/touch [post]
func (h *FormHandler) TouchField(c *gin.Context) {
	view, err := h.service.TouchField(c.Request.Context(), session(c), models.Field(c.Param("field")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit handles POST /form/submit
//
//	@Summary	Validate and submit the form
//	@Produce	json
//	@Success	200	{object}	map[string]models.AddressRecord
//	@Failure	422	{object}	map[string]map[string]string
//	@Router		/form/submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	record, err := h.service.Submit(c.Request.Context(), session(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": record})
}

func (h *FormHandler) fail(c *gin.Context, err error) {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Errors})
	case errors.Is(err, form.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field '" + c.Param("field") + "'"})
	case errors.Is(err, service.ErrInvalidPlace):
		c.JSON(http.StatusBadRequest, gin.H{"error": "place has no address data"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("form request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
