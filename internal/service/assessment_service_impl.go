package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"greenlight/internal/assess"
	"greenlight/internal/domain"
	"greenlight/internal/repository"
)

type assessmentService struct {
	assessments repository.AssessmentRepo
	logger      *slog.Logger
	observer    UseCaseObserver
}

func NewAssessmentService(assessments repository.AssessmentRepo, logger *slog.Logger, observers ...UseCaseObserver) AssessmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &assessmentService{
		assessments: assessments,
		logger:      logger,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *assessmentService) Assess(ctx context.Context, title string, in domain.AssessmentInput) (*AssessResult, error) {
	started := time.Now().UTC()

	hash := assess.InputHash(in)
	var previous *repository.AssessmentSummary
	if prior, err := s.assessments.FindByInputHash(ctx, hash); err == nil {
		previous = &repository.AssessmentSummary{
			ID:         prior.ID,
			Title:      prior.Title,
			Context:    prior.Context,
			Verdict:    prior.Verdict,
			RiskScore:  prior.RiskScore,
			Confidence: prior.Confidence,
			InputHash:  prior.InputHash,
			CreatedAt:  prior.CreatedAt.Format(time.RFC3339),
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		observe(ctx, s.observer, "assess", started, err, nil)
		return nil, fmt.Errorf("looking up prior run: %w", err)
	}

	out := assess.Run(in, s.logger)

	rec := &domain.AssessmentRecord{
		ID:         uuid.New().String(),
		Title:      title,
		Context:    in.ShootingContext,
		Verdict:    out.Verdict,
		RiskScore:  out.RiskScore,
		Confidence: out.Confidence,
		InputHash:  out.InputHash,
		Input:      in,
		Output:     out,
		CreatedAt:  started,
	}

	if err := s.assessments.Create(ctx, rec); err != nil {
		observe(ctx, s.observer, "assess", started, err, nil)
		return nil, fmt.Errorf("saving assessment: %w", err)
	}

	observe(ctx, s.observer, "assess", started, nil, map[string]any{
		"assessment_id": rec.ID,
		"verdict":       string(rec.Verdict),
		"risk_score":    rec.RiskScore,
		"repeat_input":  previous != nil,
	})
	return &AssessResult{Record: rec, Previous: previous}, nil
}

func (s *assessmentService) GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	started := time.Now().UTC()
	rec, err := s.assessments.GetByID(ctx, id)
	observe(ctx, s.observer, "get_assessment", started, err, map[string]any{"assessment_id": id})
	return rec, err
}

func (s *assessmentService) History(ctx context.Context, limit int) ([]repository.AssessmentSummary, error) {
	started := time.Now().UTC()
	summaries, err := s.assessments.List(ctx, limit)
	observe(ctx, s.observer, "history", started, err, map[string]any{"count": len(summaries)})
	return summaries, err
}

func (s *assessmentService) Delete(ctx context.Context, id string) error {
	started := time.Now().UTC()
	err := s.assessments.Delete(ctx, id)
	observe(ctx, s.observer, "delete_assessment", started, err, map[string]any{"assessment_id": id})
	return err
}
