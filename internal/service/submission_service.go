package service

import (
	"context"
	"errors"
	"fmt"

	"address-autocomplete/internal/models"
)

// ErrInvalidLimit is returned for a search limit outside 0..MaxSearchLimit.
var ErrInvalidLimit = errors.New("service: invalid limit")

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SubmissionService looks up addresses accepted by the postgres submitter
type SubmissionService struct {
	repo SubmissionRepository
}

// Repository interface for dependency injection
type SubmissionRepository interface {
	SearchSubmissions(ctx context.Context, query string, limit int) ([]models.Submission, error)
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo SubmissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo}
}

// Search runs a full-text search over submitted addresses. An empty query
// lists the newest submissions.
func (s *SubmissionService) Search(ctx context.Context, query string, limit int) ([]models.Submission, error) {
	if limit < 0 || limit > MaxSearchLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	submissions, err := s.repo.SearchSubmissions(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search submissions: %w", err)
	}

	return submissions, nil
}

// Get loads one submission, or nil when there is none with that id
func (s *SubmissionService) Get(ctx context.Context, id string) (*models.Submission, error) {
	if id == "" {
		return nil, fmt.Errorf("service: submission id cannot be empty")
	}

	submission, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load submission: %w", err)
	}

	return submission, nil
}
