package cmd

import (
	"fmt"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		EventRepo:  st.EventRepo(),
		ReviewRepo: st.ReviewRepo(),
	})
}
