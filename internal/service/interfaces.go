package service

import (
	"context"

	"greenlight/internal/domain"
	"greenlight/internal/repository"
)

// AssessResult pairs a saved assessment with whether an identical prior
// run was found for the same input.
type AssessResult struct {
	Record   *domain.AssessmentRecord
	Previous *repository.AssessmentSummary
}

type AssessmentService interface {
	Assess(ctx context.Context, title string, in domain.AssessmentInput) (*AssessResult, error)
	GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error)
	History(ctx context.Context, limit int) ([]repository.AssessmentSummary, error)
	Delete(ctx context.Context, id string) error
}
