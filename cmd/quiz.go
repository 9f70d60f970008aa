package cmd

import (
	"fmt"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/app"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Jump straight into a surah quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.Options{Start: app.StartQuiz}

		if number, _ := cmd.Flags().GetInt("surah"); number != 0 {
			surah, err := corpus.SurahByNumber(number)
			if err != nil {
				return err
			}
			opts.Surah = &surah
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		opts.EventRepo = st.EventRepo()
		opts.ReviewRepo = st.ReviewRepo()
		return app.Run(opts)
	},
}

func init() {
	quizCmd.Flags().Int("surah", 0, "Surah number to quiz (skips the picker)")
}
