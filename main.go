package main

import (
	"os"

	"github.com/gopak/minigrep/cmd"
	"github.com/gopak/minigrep/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error(err.Error())
		os.Exit(1)
	}
}
