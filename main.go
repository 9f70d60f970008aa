package main

import (
	"os"

	"github.com/moh-dev-stack/quran-memorise-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
