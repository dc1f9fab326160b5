package main

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/logger"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("no scalar found within the search limit")

func dlogCmd(opts *rootOptions) *cobra.Command {
	var (
		targetFlag string
		limit      uint64
	)
	cmd := &cobra.Command{
		Use:   "dlog [preset]",
		Short: "solve a discrete logarithm by brute force.",
		Long:  "find the smallest k with k*G equal to the target point. Uses the preset target unless --target is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"dlog"}
			}
			name, p, err := opts.preset(args)
			if err != nil {
				return err
			}
			base, err := p.GeneratorPoint()
			if err != nil {
				return err
			}

			target := p.Target
			if targetFlag != "" {
				coords, err := parseCoordinates(targetFlag)
				if err != nil {
					return err
				}
				target = &coords
			}
			if target == nil {
				return fmt.Errorf("preset %q has no target; pass --target", name)
			}
			tp, err := p.Point(*target)
			if err != nil {
				return err
			}

			bound := limit
			if bound == 0 {
				// k*G cycles within #E(F_p) <= p + 1 + 2*sqrt(p) steps.
				bound = 2*uint64(p.Modulus) + 2
			}

			log := logger.Logger()
			log.Debug().Str("base", base.String()).Str("target", tp.String()).Uint64("limit", bound).Msg("searching")

			k, found, err := base.NaiveFactor(tp, bound)
			if err != nil {
				return err
			}
			if !found {
				return errNotFound
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	}
	cmd.Flags().StringVar(&targetFlag, "target", "", "target point as x,y")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "largest k to try (defaults to 2p+2)")
	return cmd
}
