package main

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/spf13/cobra"
)

func curveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "curve [preset]",
		Short: "describe a preset curve and count its points.",
		Long:  "describe a preset curve, count its points by brute force and check the count against the Hasse bound.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, p, err := opts.preset(args)
			if err != nil {
				return err
			}
			c := p.Curve()
			count, err := c.CountPoints(p.Modulus)
			if err != nil {
				return err
			}
			lo, hi := curves.HasseBound(p.Modulus)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s over F_%d\n", name, c, p.Modulus)
			if p.Description != "" {
				fmt.Fprintf(out, "  %s\n", p.Description)
			}
			fmt.Fprintf(out, "points: %d\n", count)
			fmt.Fprintf(out, "hasse: [%.2f, %.2f]\n", lo, hi)
			return curves.CheckHasse(count, p.Modulus)
		},
	}
}
