package main

import (
	"fmt"
	"strconv"

	"github.com/smallyu/go-weierstrass/internal/logger"
	"github.com/spf13/cobra"
)

func mulCmd(opts *rootOptions) *cobra.Command {
	var pointFlag string
	cmd := &cobra.Command{
		Use:   "mul <k> [preset]",
		Short: "multiply a point by a scalar.",
		Long:  "multiply the preset generator, or the point given with --point, by k using repeated addition.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid scalar %q: %w", args[0], err)
			}
			_, p, err := opts.preset(args[1:])
			if err != nil {
				return err
			}
			coords := p.Generator
			if pointFlag != "" {
				if coords, err = parseCoordinates(pointFlag); err != nil {
					return err
				}
			}
			base, err := p.Point(coords)
			if err != nil {
				return err
			}

			log := logger.Logger()
			log.Debug().Str("point", base.String()).Uint64("k", k).Msg("multiplying")

			r, err := base.ScalarMul(k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().StringVar(&pointFlag, "point", "", "base point as x,y (defaults to the preset generator)")
	return cmd
}
