// ABOUTME: CLI command to grade a user idea
// ABOUTME: Records a validation and reports the weighted overall score
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adityamathur5836/ideavault/internal/grading"
	"github.com/adityamathur5836/ideavault/internal/models"
	"github.com/adityamathur5836/ideavault/internal/storage/sqlite"
)

var (
	gradeIdeaID      string
	gradeValidator   string
	gradeMarketFit   float64
	gradeFeasibility float64
	gradeInnovation  float64
	gradeScalability float64
	gradeFeedback    string
	gradeAnonymous   bool
)

// NewGradeCmd creates the grade command
func NewGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a user idea",
		Long: `Submit a grading validation for a stored user idea.

The overall score is a fixed weighted sum of the four dimensions:
market fit 30%, feasibility 25%, innovation 25%, scalability 20%.
Each validator may grade an idea once.`,
		RunE: runGrade,
	}

	cmd.Flags().StringVar(&gradeIdeaID, "idea-id", "", "User idea to grade (required)")
	cmd.Flags().StringVar(&gradeValidator, "validator", "", "Who is grading (required)")
	cmd.Flags().Float64Var(&gradeMarketFit, "market-fit", 0, "Market fit score, 1-10 (required)")
	cmd.Flags().Float64Var(&gradeFeasibility, "feasibility", 0, "Feasibility score, 1-10 (required)")
	cmd.Flags().Float64Var(&gradeInnovation, "innovation", 0, "Innovation score, 1-10 (required)")
	cmd.Flags().Float64Var(&gradeScalability, "scalability", 0, "Scalability score, 1-10 (required)")
	cmd.Flags().StringVar(&gradeFeedback, "feedback", "", "Optional free-form feedback")
	cmd.Flags().BoolVar(&gradeAnonymous, "anonymous", false, "Hide the validator from other users")

	_ = cmd.MarkFlagRequired("idea-id")
	_ = cmd.MarkFlagRequired("validator")
	_ = cmd.MarkFlagRequired("market-fit")
	_ = cmd.MarkFlagRequired("feasibility")
	_ = cmd.MarkFlagRequired("innovation")
	_ = cmd.MarkFlagRequired("scalability")

	return cmd
}

func runGrade(cmd *cobra.Command, args []string) error {
	scores := grading.Scores{
		MarketFit:   gradeMarketFit,
		Feasibility: gradeFeasibility,
		Innovation:  gradeInnovation,
		Scalability: gradeScalability,
	}
	if err := scores.Validate(); err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	idea, err := e.ideas.Get(gradeIdeaID)
	if err != nil {
		return fmt.Errorf("looking up idea: %w", err)
	}
	if idea == nil {
		return fmt.Errorf("idea %s not found", gradeIdeaID)
	}

	overall := grading.WeightedScore(scores)
	validation := models.Validation{
		IdeaID:           gradeIdeaID,
		ValidatorID:      gradeValidator,
		MarketFitScore:   gradeMarketFit,
		FeasibilityScore: gradeFeasibility,
		InnovationScore:  gradeInnovation,
		ScalabilityScore: gradeScalability,
		OverallScore:     overall,
		Feedback:         gradeFeedback,
		IsAnonymous:      gradeAnonymous,
	}
	if err := e.validations.Insert(&validation); err != nil {
		if errors.Is(err, sqlite.ErrAlreadyValidated) {
			return fmt.Errorf("%s has already graded idea %s", gradeValidator, gradeIdeaID)
		}
		return fmt.Errorf("recording validation: %w", err)
	}

	avg, err := e.validations.AverageScore(gradeIdeaID)
	if err != nil {
		return fmt.Errorf("averaging scores: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Graded %q: overall %.1f (idea average %.2f)\n",
			truncate(idea.Title, 40), overall, avg)
	}
	return nil
}
