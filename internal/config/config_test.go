package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"dlog", "exchange", "exercise"}, cfg.Names())

	ex, err := cfg.Lookup("exercise")
	require.NoError(t, err)
	assert.Equal(t, int64(1021), ex.Modulus)
	assert.Equal(t, "y^2 = x^3 - 3x - 3", ex.Curve().String())

	g, err := ex.GeneratorPoint()
	require.NoError(t, err)
	assert.Equal(t, "(379, 1011)", g.String())

	dlog, err := cfg.Lookup("dlog")
	require.NoError(t, err)
	require.NotNil(t, dlog.Target)
	assert.Equal(t, Coordinates{X: 612, Y: 827}, *dlog.Target)

	xchg, err := cfg.Lookup("exchange")
	require.NoError(t, err)
	require.NotNil(t, xchg.AltGenerator)
	alt, err := xchg.Point(*xchg.AltGenerator)
	require.NoError(t, err)
	assert.Equal(t, "(9, 2)", alt.String())
	assert.Nil(t, xchg.Target)
}

func TestLookupUnknown(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	_, err = cfg.Lookup("p256")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestParseRejectsOffCurve(t *testing.T) {
	doc := `
curves:
  broken:
    a: -3
    b: -3
    modulus: 1021
    generator: {x: 56, y: 914}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, curves.ErrPointNotOnCurve)
	assert.Contains(t, err.Error(), `preset "broken"`)
}

func TestParseRejectsBadTarget(t *testing.T) {
	doc := `
curves:
  dlog:
    a: 905
    b: 100
    modulus: 1021
    generator: {x: 1006, y: 416}
    target: {x: 1, y: 1}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, curves.ErrPointNotOnCurve)
	assert.Contains(t, err.Error(), "target")
}

func TestParseMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("curves: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
curves:
  tiny:
    a: -1
    b: 0
    modulus: 7
    generator: {x: 4, y: 2}
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	tiny, err := cfg.Lookup("tiny")
	require.NoError(t, err)
	assert.Equal(t, "y^2 = x^3 - 1x", tiny.Curve().String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
