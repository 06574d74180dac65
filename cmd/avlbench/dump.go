package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cryptonstudio/crypton-ordered-set/types/avl"
)

func dumpCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [values...]",
		Short: "Render a set built from the given integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := avl.NewOrderedSet[int64]()
			set.Grow(len(args))
			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return errors.Wrapf(err, "invalid value %q", arg)
				}
				set.Insert(v)
			}
			label := func(v int64) string { return strconv.FormatInt(v, 10) }

			switch format {
			case "ascii":
				depth := set.Print(cmd.OutOrStdout(), label)
				log.Debug().Int("depth", depth).Int("size", set.Size()).Msg("printed")
				return nil
			case "dot":
				return set.WriteDot(cmd.OutOrStdout(), label)
			}
			return errors.Errorf("unknown format %q", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "ascii", "Output format: ascii or dot")
	return cmd
}
