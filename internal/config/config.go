// Package config loads named curve presets from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresets []byte

// ErrUnknownPreset is returned by Lookup for a name that is not configured.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Coordinates is an affine point given as residues.
type Coordinates struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
}

// Preset describes a curve over a prime field and its notable points.
type Preset struct {
	Description  string       `yaml:"description"`
	A            int64        `yaml:"a"`
	B            int64        `yaml:"b"`
	Modulus      int64        `yaml:"modulus"`
	Generator    Coordinates  `yaml:"generator"`
	AltGenerator *Coordinates `yaml:"alt_generator,omitempty"`
	Target       *Coordinates `yaml:"target,omitempty"`
}

// Config is the top-level YAML document.
type Config struct {
	Curves map[string]Preset `yaml:"curves"`
}

// Default returns the presets compiled into the binary.
func Default() (*Config, error) {
	return Parse(defaultPresets)
}

// Load reads presets from path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open presets: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes presets from r.
func Read(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document. Every generator, alternate
// generator and target must lie on its curve.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}
	for _, name := range cfg.Names() {
		if err := cfg.Curves[name].validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return &cfg, nil
}

// Names returns the preset names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Curves))
	for name := range c.Curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset.
func (c *Config) Lookup(name string) (Preset, error) {
	p, ok := c.Curves[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

func (p Preset) validate() error {
	if _, err := p.Point(p.Generator); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if p.AltGenerator != nil {
		if _, err := p.Point(*p.AltGenerator); err != nil {
			return fmt.Errorf("alt_generator: %w", err)
		}
	}
	if p.Target != nil {
		if _, err := p.Point(*p.Target); err != nil {
			return fmt.Errorf("target: %w", err)
		}
	}
	return nil
}

// Curve returns y^2 = x^3 + a*x + b.
func (p Preset) Curve() curves.Curve {
	return curves.New(p.A, p.B)
}

// Point builds c on the preset's curve.
func (p Preset) Point(c Coordinates) (curves.Point, error) {
	return curves.NewPrimePoint(c.X, c.Y, p.Modulus, p.Curve())
}

// GeneratorPoint returns the preset's generator.
func (p Preset) GeneratorPoint() (curves.Point, error) {
	return p.Point(p.Generator)
}
