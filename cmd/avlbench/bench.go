package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cryptonstudio/crypton-ordered-set/internal/program"
)

func benchCommand() *cobra.Command {
	var (
		ops     int
		keys    int64
		seed    uint64
		keyKind string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure throughput of a random insert/erase/find mix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := program.ParseKeyKind(keyKind)
			if err != nil {
				return err
			}
			handler := &Counter{}
			target, err := program.NewTarget(kind, handler)
			if err != nil {
				return err
			}

			log.Info().Int("ops", ops).Int64("keys", keys).Uint64("seed", seed).Str("kind", string(kind)).Msg("prepare input")
			p := program.Generate(rand.New(rand.NewPCG(seed, seed)), ops, keys)

			log.Info().Msg("start execution")
			s := time.Now()
			counters := target.Apply(p)
			elapsed := time.Since(s)

			out := cmd.OutOrStdout()
			handler.PrintStatistics(out)
			fmt.Fprintf(out, "Found %23s\n", humanize.Comma(counters.Found))
			fmt.Fprintf(out, "Missed %22s\n", humanize.Comma(counters.Missed))
			fmt.Fprintf(out, "Clears %22s\n", humanize.Comma(counters.Cleared))
			fmt.Fprintf(out, "Final size %18s\n", humanize.Comma(int64(target.Size())))
			fmt.Fprintf(out, "Final height %16d\n", target.Height())

			rps := float64(ops) * float64(time.Second) / float64(elapsed)
			fmt.Fprintf(out, "RPS: %.5f\n", rps)
			log.Debug().Dur("elapsed", elapsed).Msg("done")
			return nil
		},
	}
	cmd.Flags().IntVar(&ops, "ops", 1_000_000, "Operations count")
	cmd.Flags().Int64Var(&keys, "keys", 100_000, "Key space size")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&keyKind, "key-kind", string(program.KeyKindInt), "Key kind: int, string or uint128")
	return cmd
}
