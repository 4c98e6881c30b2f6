// ABOUTME: End-to-end tests for the grade command
// ABOUTME: Runs against a temp database with a stored user idea

package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/adityamathur5836/ideavault/internal/models"
	"github.com/adityamathur5836/ideavault/internal/storage/sqlite"
)

// seedUserIdea inserts a user idea directly and returns its id.
func seedUserIdea(t *testing.T) string {
	t.Helper()
	db, err := sqlite.Open(os.Getenv("IDEAVAULT_DB"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	idea := &models.UserIdea{
		UserID:      "u1",
		Title:       "Meal kit delivery",
		Description: "weekly boxes",
	}
	if err := sqlite.NewUserIdeaStore(db).Insert(idea); err != nil {
		t.Fatalf("inserting user idea: %v", err)
	}
	return idea.ID
}

func TestGradeCmd(t *testing.T) {
	setupTestEnv(t)
	ideaID := seedUserIdea(t)

	out, err := runCLI(t, "grade",
		"--idea-id", ideaID,
		"--validator", "alice",
		"--market-fit", "8",
		"--feasibility", "7",
		"--innovation", "6",
		"--scalability", "9")
	if err != nil {
		t.Fatalf("grade error = %v", err)
	}

	// 8*0.30 + 7*0.25 + 6*0.25 + 9*0.20 = 7.45 -> 7.5
	if !strings.Contains(out, "overall 7.5") {
		t.Errorf("output = %q, want weighted overall score", out)
	}
}

func TestGradeCmd_DuplicateValidator(t *testing.T) {
	setupTestEnv(t)
	ideaID := seedUserIdea(t)

	args := []string{"grade",
		"--idea-id", ideaID,
		"--validator", "alice",
		"--market-fit", "5",
		"--feasibility", "5",
		"--innovation", "5",
		"--scalability", "5"}

	if _, err := runCLI(t, args...); err != nil {
		t.Fatalf("first grade error = %v", err)
	}

	_, err := runCLI(t, args...)
	if err == nil {
		t.Error("second grade by the same validator should fail")
	}
	if err != nil && !strings.Contains(err.Error(), "already graded") {
		t.Errorf("error = %v, want duplicate-validator message", err)
	}
}

func TestGradeCmd_UnknownIdea(t *testing.T) {
	setupTestEnv(t)

	_, err := runCLI(t, "grade",
		"--idea-id", "does-not-exist",
		"--validator", "alice",
		"--market-fit", "5",
		"--feasibility", "5",
		"--innovation", "5",
		"--scalability", "5")
	if err == nil {
		t.Error("grading an unknown idea should fail")
	}
}

func TestGradeCmd_ScoreOutOfRange(t *testing.T) {
	setupTestEnv(t)

	_, err := runCLI(t, "grade",
		"--idea-id", "x",
		"--validator", "alice",
		"--market-fit", "11",
		"--feasibility", "5",
		"--innovation", "5",
		"--scalability", "5")
	if err == nil {
		t.Error("out-of-range score should fail before any I/O")
	}
	if err != nil && !strings.Contains(err.Error(), "between 1 and 10") {
		t.Errorf("error = %v, want range message", err)
	}
}
