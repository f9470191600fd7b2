package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudogen/matrix"
	"svw.info/sudogen/shuffle"
)

var (
	soakQty       int
	soakLevel     int
	soakAllLevels bool
	soakSize      int
	soakSeed      int64
)

var commandSoak = &cobra.Command{
	Use:   "soak",
	Short: "Repeatedly generate, reveal, and verify grids, reporting timing stats",
	Long: "Soak drives the engine the way the reference benchmark does: each " +
		"round generates a grid at the chosen level, masks it into a puzzle, " +
		"and verifies the stored solution. Any incorrect grid aborts the run.",
	RunE: runSoak,
}

func init() {
	commandSoak.Flags().IntVarP(&soakQty, "qty", "q", 1000, "generations per level")
	commandSoak.Flags().IntVarP(&soakLevel, "level", "l", 0, "shuffle complexity level (0-9)")
	commandSoak.Flags().BoolVarP(&soakAllLevels, "all-levels", "a", false, "sweep every level 0-9")
	commandSoak.Flags().IntVarP(&soakSize, "size", "n", matrix.DefaultSide, "side length (perfect square >= 4)")
	commandSoak.Flags().Int64VarP(&soakSeed, "seed", "s", 0, "random seed (0 = from clock)")
	mainCommand.AddCommand(commandSoak)
}

func runSoak(cmd *cobra.Command, args []string) error {
	from, till := soakLevel, soakLevel
	if soakAllLevels {
		from, till = 0, int(shuffle.MaxLevel)
	}
	for level := from; level <= till; level++ {
		if err := soakLevelRun(level); err != nil {
			return err
		}
	}
	return nil
}

func soakLevelRun(level int) error {
	opts := []matrix.Option{matrix.WithSize(soakSize)}
	if soakSeed != 0 {
		opts = append(opts, matrix.WithSeed(soakSeed))
	}
	m, err := matrix.New(opts...)
	if err != nil {
		return err
	}
	var genTotal, verifyTotal time.Duration
	for i := 0; i < soakQty; i++ {
		start := time.Now()
		if err := m.Generate(level); err != nil {
			return err
		}
		genTotal += time.Since(start)

		if err := m.Reveal(); err != nil {
			return err
		}
		start = time.Now()
		ok := m.VerifyCorrect()
		verifyTotal += time.Since(start)
		if !ok {
			return fmt.Errorf("incorrect grid at level %d, round %d", level, i+1)
		}
	}
	logger.Info("soak complete",
		"level", level,
		"grids", soakQty,
		"mean_generate", (genTotal / time.Duration(soakQty)).Round(time.Microsecond),
		"mean_verify", (verifyTotal / time.Duration(soakQty)).Round(time.Microsecond),
	)
	return nil
}
