package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	presetsPath string
	logLevel    string
	presets     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "ectoy",
		Short:        "Toy elliptic curve arithmetic over small prime fields.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.presetsPath, "presets", "", "YAML file with curve presets (defaults to the built-in set)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error, disabled)")

	rootCmd.AddCommand(
		curveCmd(opts),
		mulCmd(opts),
		dlogCmd(opts),
		exchangeCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	logger.SetOutput(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"})
	logger.SetLevel(level)

	if o.presetsPath == "" {
		o.presets, err = config.Default()
	} else {
		o.presets, err = config.Load(o.presetsPath)
	}
	return err
}

func (o *rootOptions) preset(args []string) (string, config.Preset, error) {
	name := "exercise"
	if len(args) > 0 {
		name = args[0]
	}
	p, err := o.presets.Lookup(name)
	return name, p, err
}

// parseCoordinates reads "x,y".
func parseCoordinates(s string) (config.Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return config.Coordinates{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return config.Coordinates{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return config.Coordinates{}, fmt.Errorf("point %q: %w", s, err)
	}
	return config.Coordinates{X: x, Y: y}, nil
}
