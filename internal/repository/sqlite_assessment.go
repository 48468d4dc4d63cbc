package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"greenlight/internal/domain"
)

// ErrNotFound is returned when no assessment matches the lookup.
var ErrNotFound = errors.New("assessment not found")

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
// The full input and output are stored as JSON alongside the indexed
// summary columns.
type SQLiteAssessmentRepo struct {
	db *sql.DB
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(db *sql.DB) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: db}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, rec *domain.AssessmentRecord) error {
	inputJSON, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("encoding input: %w", err)
	}
	outputJSON, err := json.Marshal(rec.Output)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	query := `INSERT INTO assessments (id, title, context, verdict, risk_score, confidence, input_hash, input_json, output_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Title,
		string(rec.Context),
		string(rec.Verdict),
		rec.RiskScore,
		string(rec.Confidence),
		rec.InputHash,
		string(inputJSON),
		string(outputJSON),
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	query := `SELECT id, title, context, verdict, risk_score, confidence, input_hash, input_json, output_json, created_at
		FROM assessments WHERE id = ?`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAssessmentRepo) FindByInputHash(ctx context.Context, hash string) (*domain.AssessmentRecord, error) {
	query := `SELECT id, title, context, verdict, risk_score, confidence, input_hash, input_json, output_json, created_at
		FROM assessments WHERE input_hash = ? ORDER BY created_at DESC LIMIT 1`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, hash))
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context, limit int) ([]AssessmentSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, title, context, verdict, risk_score, confidence, input_hash, created_at
		FROM assessments ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var out []AssessmentSummary
	for rows.Next() {
		var s AssessmentSummary
		var context, verdict, confidence string
		if err := rows.Scan(&s.ID, &s.Title, &context, &verdict, &s.RiskScore, &confidence, &s.InputHash, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning assessment summary: %w", err)
		}
		s.Context = domain.ShootingContext(context)
		s.Verdict = domain.Verdict(verdict)
		s.Confidence = domain.Confidence(confidence)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteAssessmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteAssessmentRepo) scanRecord(row *sql.Row) (*domain.AssessmentRecord, error) {
	var rec domain.AssessmentRecord
	var context, verdict, confidence, inputJSON, outputJSON, createdAt string

	err := row.Scan(&rec.ID, &rec.Title, &context, &verdict, &rec.RiskScore, &confidence, &rec.InputHash, &inputJSON, &outputJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	rec.Context = domain.ShootingContext(context)
	rec.Verdict = domain.Verdict(verdict)
	rec.Confidence = domain.Confidence(confidence)

	if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	if err := json.Unmarshal([]byte(outputJSON), &rec.Output); err != nil {
		return nil, fmt.Errorf("decoding output: %w", err)
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = t

	return &rec, nil
}
