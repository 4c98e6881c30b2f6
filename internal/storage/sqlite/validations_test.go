// ABOUTME: Tests for the validation store
// ABOUTME: Covers submissions, the one-per-validator rule, and score averaging
package sqlite

import (
	"math"
	"testing"

	"github.com/adityamathur5836/ideavault/internal/models"
)

func insertIdea(t *testing.T, db *DB) string {
	t.Helper()
	store := NewUserIdeaStore(db)
	idea := &models.UserIdea{Title: "idea under review"}
	if err := store.Insert(idea); err != nil {
		t.Fatalf("inserting idea: %v", err)
	}
	return idea.ID
}

func TestValidationStore_InsertAndFetch(t *testing.T) {
	db := testDB(t)
	store := NewValidationStore(db)
	ideaID := insertIdea(t, db)

	v := &models.Validation{
		IdeaID:           ideaID,
		ValidatorID:      "val-1",
		MarketFitScore:   8,
		FeasibilityScore: 6,
		InnovationScore:  7,
		ScalabilityScore: 9,
		OverallScore:     7.5,
		Feedback:         "solid",
	}
	if err := store.Insert(v); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetForIdea(ideaID)
	if err != nil {
		t.Fatalf("GetForIdea failed: %v", err)
	}
	if len(got) != 1 || got[0].ValidatorID != "val-1" || got[0].OverallScore != 7.5 {
		t.Errorf("validation mismatch: %+v", got)
	}
}

func TestValidationStore_DuplicateValidatorRejected(t *testing.T) {
	db := testDB(t)
	store := NewValidationStore(db)
	ideaID := insertIdea(t, db)

	first := &models.Validation{IdeaID: ideaID, ValidatorID: "val-1", OverallScore: 7}
	if err := store.Insert(first); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	dup := &models.Validation{IdeaID: ideaID, ValidatorID: "val-1", OverallScore: 9}
	if err := store.Insert(dup); err != ErrAlreadyValidated {
		t.Errorf("expected ErrAlreadyValidated, got %v", err)
	}
}

func TestValidationStore_AverageScore(t *testing.T) {
	db := testDB(t)
	store := NewValidationStore(db)
	ideaID := insertIdea(t, db)

	avg, err := store.AverageScore(ideaID)
	if err != nil {
		t.Fatalf("AverageScore failed: %v", err)
	}
	if avg != 0 {
		t.Errorf("ungraded average = %v, want 0", avg)
	}

	scores := []float64{6, 8}
	for i, s := range scores {
		v := &models.Validation{IdeaID: ideaID, ValidatorID: string(rune('a' + i)), OverallScore: s}
		if err := store.Insert(v); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	avg, err = store.AverageScore(ideaID)
	if err != nil {
		t.Fatalf("AverageScore failed: %v", err)
	}
	if math.Abs(avg-7) > 1e-9 {
		t.Errorf("average = %v, want 7", avg)
	}
}
