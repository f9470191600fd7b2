package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{})

var mainCommand = &cobra.Command{
	Use:   "sudogen",
	Short: "Generate and verify Sudoku grids",
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logger.Fatal(err)
	}
}
