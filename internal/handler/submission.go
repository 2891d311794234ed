package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"address-autocomplete/internal/models"
	"address-autocomplete/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SubmissionHandler handles lookups of submitted addresses
type SubmissionHandler struct {
	service SubmissionService
}

// Service interface for dependency injection
type SubmissionService interface {
	Search(ctx context.Context, query string, limit int) ([]models.Submission, error)
	Get(ctx context.Context, id string) (*models.Submission, error)
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: svc}
}

// Search handles GET /addresses requests
//
//	@Summary	Search submitted addresses
//	@Produce	json
//	@Param		q		query		string	false	"full-text query"
//	@Param		limit	query		int		false	"max results"
//	@Success	200		{array}		models.Submission
//	@Failure	400		{object}	map[string]string
//	@Router		/addresses [get]
func (h *SubmissionHandler) Search(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = n
	}

	submissions, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLimit) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 0 and " + strconv.Itoa(service.MaxSearchLimit)})
			return
		}
		log.Error().Err(err).Msg("submission search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// Get handles GET /addresses/:id requests
//
//	@Summary	Load one submitted address
//	@Produce	json
//	@Param		id	path		string	true	"submission id"
//	@Success	200	{object}	models.Submission
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/addresses/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id format"})
		return
	}

	submission, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("submission lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if submission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no submission found with the specified id"})
		return
	}

	c.JSON(http.StatusOK, submission)
}
