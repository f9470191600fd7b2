package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudogen/grid"
	"svw.info/sudogen/matrix"
)

var (
	generateLevel  int
	generateSize   int
	generateSeed   int64
	generatePuzzle bool
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate one grid and print it",
	RunE:  runGenerate,
}

func init() {
	commandGenerate.Flags().IntVarP(&generateLevel, "level", "l", 0, "shuffle complexity level (0-9)")
	commandGenerate.Flags().IntVarP(&generateSize, "size", "n", matrix.DefaultSide, "side length (perfect square >= 4)")
	commandGenerate.Flags().Int64VarP(&generateSeed, "seed", "s", 0, "random seed (0 = from clock)")
	commandGenerate.Flags().BoolVarP(&generatePuzzle, "puzzle", "p", false, "mask cells to produce a playable puzzle")
	mainCommand.AddCommand(commandGenerate)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := []matrix.Option{matrix.WithSize(generateSize)}
	if generateSeed != 0 {
		opts = append(opts, matrix.WithSeed(generateSeed))
	}
	m, err := matrix.New(opts...)
	if err != nil {
		return err
	}
	if err := m.Generate(generateLevel); err != nil {
		return err
	}
	out := m.Grid()
	if generatePuzzle {
		if err := m.Reveal(); err != nil {
			return err
		}
		out = m.PuzzleGrid()
	}
	fmt.Println(grid.Fancy(out))
	return nil
}
