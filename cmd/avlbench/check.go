package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cryptonstudio/crypton-ordered-set/internal/program"
)

func checkCommand() *cobra.Command {
	var (
		programs int
		size     int
		keys     int64
		seed     uint64
		keyKind  string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run random programs verifying set invariants after every step",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := program.ParseKeyKind(keyKind)
			if err != nil {
				return err
			}
			if keys <= 0 {
				keys = int64(size)
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			for i := 0; i < programs; i++ {
				target, err := program.NewTarget(kind, nil)
				if err != nil {
					return err
				}
				p := program.Generate(rng, size, keys)
				if err := target.Check(p); err != nil {
					log.Error().Err(err).Int("program", i).Msg("check failed")
					log.Debug().Msgf("program:\n%s", p)
					return errors.Wrapf(err, "program %d", i)
				}
				log.Debug().Int("program", i).Int("size", target.Size()).Int("height", target.Height()).Msg("passed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d programs of %d instructions passed\n", programs, size)
			return nil
		},
	}
	cmd.Flags().IntVar(&programs, "programs", 100, "Programs count")
	cmd.Flags().IntVar(&size, "size", 1_000, "Instructions per program")
	cmd.Flags().Int64Var(&keys, "keys", 0, "Key space size (default is program size)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&keyKind, "key-kind", string(program.KeyKindInt), "Key kind: int, string or uint128")
	return cmd
}
