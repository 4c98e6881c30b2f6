// ABOUTME: Validation store over SQLite
// ABOUTME: Persists grading submissions with a one-per-validator rule
package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// ValidationStore handles grading submission persistence
type ValidationStore struct {
	db *DB
}

// NewValidationStore creates a new ValidationStore
func NewValidationStore(db *DB) *ValidationStore {
	return &ValidationStore{db: db}
}

// ErrAlreadyValidated is returned when a validator submits twice for one idea.
var ErrAlreadyValidated = fmt.Errorf("validator has already graded this idea")

// Insert stores a validation. The one-grade-per-validator rule is enforced
// by the table's unique constraint, so concurrent duplicates cannot slip
// through a pre-check.
func (s *ValidationStore) Insert(v *models.Validation) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO idea_validations
			(id, idea_id, validator_id, market_fit_score, feasibility_score,
			 innovation_score, scalability_score, overall_score, feedback, is_anonymous, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.IdeaID, v.ValidatorID, v.MarketFitScore, v.FeasibilityScore,
		v.InnovationScore, v.ScalabilityScore, v.OverallScore, v.Feedback, v.IsAnonymous, v.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: idea_validations") {
			return ErrAlreadyValidated
		}
		return fmt.Errorf("inserting validation: %w", err)
	}
	return nil
}

// GetForIdea returns all validations for an idea, newest first.
func (s *ValidationStore) GetForIdea(ideaID string) ([]models.Validation, error) {
	rows, err := s.db.Query(`
		SELECT id, idea_id, validator_id, market_fit_score, feasibility_score,
		       innovation_score, scalability_score, overall_score, feedback, is_anonymous, created_at
		FROM idea_validations
		WHERE idea_id = ?
		ORDER BY created_at DESC
	`, ideaID)
	if err != nil {
		return nil, fmt.Errorf("fetching validations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var validations []models.Validation
	for rows.Next() {
		var v models.Validation
		if err := rows.Scan(&v.ID, &v.IdeaID, &v.ValidatorID, &v.MarketFitScore, &v.FeasibilityScore,
			&v.InnovationScore, &v.ScalabilityScore, &v.OverallScore, &v.Feedback, &v.IsAnonymous, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning validation: %w", err)
		}
		validations = append(validations, v)
	}
	return validations, rows.Err()
}

// AverageScore returns the mean overall score for an idea, 0 when ungraded.
func (s *ValidationStore) AverageScore(ideaID string) (float64, error) {
	var avg float64
	err := s.db.QueryRow(
		"SELECT COALESCE(AVG(overall_score), 0) FROM idea_validations WHERE idea_id = ?",
		ideaID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("averaging scores: %w", err)
	}
	return avg, nil
}
