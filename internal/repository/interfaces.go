package repository

import (
	"context"

	"greenlight/internal/domain"
)

// AssessmentSummary is the list-view projection of a saved assessment,
// cheap to scan without decoding the full payload.
type AssessmentSummary struct {
	ID         string
	Title      string
	Context    domain.ShootingContext
	Verdict    domain.Verdict
	RiskScore  float64
	Confidence domain.Confidence
	InputHash  string
	CreatedAt  string
}

type AssessmentRepo interface {
	Create(ctx context.Context, rec *domain.AssessmentRecord) error
	GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error)
	List(ctx context.Context, limit int) ([]AssessmentSummary, error)
	FindByInputHash(ctx context.Context, hash string) (*domain.AssessmentRecord, error)
	Delete(ctx context.Context, id string) error
}
