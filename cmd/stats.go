package cmd

import (
	"fmt"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		sum, err := st.EventRepo().Summary(ctx)
		if err != nil {
			return fmt.Errorf("load summary: %w", err)
		}

		if sum.TotalAnswers == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		accuracy := float64(sum.CorrectAnswers) / float64(sum.TotalAnswers) * 100
		fmt.Printf("Answers: %d   Correct: %d   Accuracy: %.0f%%   Points: %d/%d\n\n",
			sum.TotalAnswers, sum.CorrectAnswers, accuracy, sum.Points, sum.MaxPoints)

		for _, ts := range sum.ByType {
			fmt.Printf("  %-18s %4d answered   %4d correct   %5d pts\n",
				scoring.QuestionType(ts.QuestionType).DisplayName(),
				ts.Answered, ts.Correct, ts.Points)
		}
		return nil
	},
}
