package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/protocol/handshake"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
	"github.com/spf13/cobra"
)

type exchangeOptions struct {
	group       string
	preset      string
	aliceSecret uint64
	bobSecret   uint64
	altBob      bool
}

func exchangeCmd(opts *rootOptions) *cobra.Command {
	x := &exchangeOptions{}
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "run a two-party Diffie-Hellman exchange in memory.",
		Long: "run alice and bob concurrently over an in-memory link and print the secret each derived. " +
			"Secrets left at 0 are drawn at random. --alt-bob gives bob the preset's alternate generator, " +
			"so the secrets differ.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := x.fillSecrets(rand.Reader); err != nil {
				return err
			}
			switch x.group {
			case "toy":
				return x.runToy(cmd, opts)
			case "secp256k1":
				g := curves.NewSecp256k1()
				return runExchange(cmd, g, g.BasePoint(), g.BasePoint(), x)
			case "ed25519":
				g := curves.NewEd25519()
				return runExchange(cmd, g, g.BasePoint(), g.BasePoint(), x)
			default:
				return fmt.Errorf("unknown group %q (toy, secp256k1, ed25519)", x.group)
			}
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&x.group, "group", "toy", "group to exchange over (toy, secp256k1, ed25519)")
	flags.StringVar(&x.preset, "preset", "exchange", "preset curve for the toy group")
	flags.Uint64Var(&x.aliceSecret, "alice-secret", 0, "alice's private scalar")
	flags.Uint64Var(&x.bobSecret, "bob-secret", 0, "bob's private scalar")
	flags.BoolVar(&x.altBob, "alt-bob", false, "give bob the preset's alternate generator (toy only)")
	return cmd
}

func (x *exchangeOptions) fillSecrets(r io.Reader) error {
	max := uint64(1 << 62)
	if x.group == "toy" {
		max = 1 << 16
	}
	var err error
	if x.aliceSecret == 0 {
		if x.aliceSecret, err = ecdh.RandomScalar(r, max); err != nil {
			return err
		}
	}
	if x.bobSecret == 0 {
		if x.bobSecret, err = ecdh.RandomScalar(r, max); err != nil {
			return err
		}
	}
	return nil
}

func (x *exchangeOptions) runToy(cmd *cobra.Command, opts *rootOptions) error {
	p, err := opts.presets.Lookup(x.preset)
	if err != nil {
		return err
	}
	genA, err := p.GeneratorPoint()
	if err != nil {
		return err
	}
	genB := genA
	if x.altBob {
		if p.AltGenerator == nil {
			return fmt.Errorf("preset %q has no alternate generator", x.preset)
		}
		if genB, err = p.Point(*p.AltGenerator); err != nil {
			return err
		}
	}
	return runExchange[curves.Point](cmd, curves.NewWeierstrassGroup(p.Curve()), genA, genB, x)
}

func runExchange[P any](cmd *cobra.Command, group ecdh.Group[P], genA, genB P, x *exchangeOptions) error {
	sharedA, sharedB, err := handshake.Exchange(context.Background(), group,
		handshake.Party[P]{ID: "alice", Generator: genA, Secret: x.aliceSecret},
		handshake.Party[P]{ID: "bob", Generator: genB, Secret: x.bobSecret},
	)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "group: %s\n", group.Name())
	fmt.Fprintf(out, "alice: %s\n", group.Describe(sharedA))
	fmt.Fprintf(out, "bob:   %s\n", group.Describe(sharedB))
	fmt.Fprintf(out, "agree: %v\n", group.Equal(sharedA, sharedB))
	return nil
}
