package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenlight/internal/domain"
	"greenlight/internal/testutil"
)

func sampleRecord() *domain.AssessmentRecord {
	in := testutil.SimpleUKInput()
	return &domain.AssessmentRecord{
		ID:         uuid.New().String(),
		Title:      "Test spot",
		Context:    domain.ContextUK,
		Verdict:    domain.VerdictGreen,
		RiskScore:  1.5,
		Confidence: domain.ConfidenceMedium,
		InputHash:  "abc123",
		Input:      in,
		Output: domain.AssessmentOutput{
			Verdict:              domain.VerdictGreen,
			RiskScore:            1.5,
			RecommendedShootDays: 1,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo := NewSQLiteAssessmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.Verdict, got.Verdict)
	assert.Equal(t, rec.RiskScore, got.RiskScore)
	assert.Equal(t, rec.CreatedAt.Unix(), got.CreatedAt.Unix())
	// The JSON payload survives intact, pointers included.
	require.NotNil(t, got.Input.ProposedShootDays)
	assert.Equal(t, 1, *got.Input.ProposedShootDays)
	assert.Equal(t, 1, got.Output.RecommendedShootDays)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	repo := NewSQLiteAssessmentRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewSQLiteAssessmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	old := sampleRecord()
	old.Title = "old"
	old.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, old))

	recent := sampleRecord()
	recent.Title = "recent"
	require.NoError(t, repo.Create(ctx, recent))

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "recent", list[0].Title)
	assert.Equal(t, "old", list[1].Title)

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFindByInputHash(t *testing.T) {
	repo := NewSQLiteAssessmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.FindByInputHash(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = repo.FindByInputHash(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewSQLiteAssessmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
}
