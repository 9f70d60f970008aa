package cmd

import (
	"fmt"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/app"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Review vocabulary words that are due",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return app.Run(app.Options{
			EventRepo:  st.EventRepo(),
			ReviewRepo: st.ReviewRepo(),
			Start:      app.StartStudy,
		})
	},
}
