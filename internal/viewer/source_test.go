package viewer

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"origamiview/internal/config"
	"origamiview/internal/dataset"
	"origamiview/internal/geom"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "origamiview.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("fps = 12\n"), 0o644))
	data := filepath.Join(dir, "tile_coords.json")
	require.NoError(t, os.WriteFile(data, []byte(`[{"coords":[[0,0,1]]}]`), 0o644))

	cfg, ds, err := Setup(Options{})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, dataset.Origami, ds.Kind)
	assert.Empty(t, ds.Records)

	cfg, ds, err = Setup(Options{ConfigPath: cfgPath, Demo: true, Transform: "flipz"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.FPS)
	require.NotNil(t, cfg.Transform)
	assert.Equal(t, geom.FlipZ, *cfg.Transform)
	assert.Equal(t, dataset.Synthetic, ds.Kind)

	_, ds, err = Setup(Options{Path: data})
	require.NoError(t, err)
	assert.Equal(t, "tile_coords.json", ds.Name)

	for name, o := range map[string]Options{
		"both":      {Demo: true, Path: data},
		"transform": {Transform: "mirror"},
		"config":    {ConfigPath: filepath.Join(dir, "missing.toml")},
		"data":      {Path: filepath.Join(dir, "missing.json")},
	} {
		_, _, err := Setup(o)
		assert.Error(t, err, name)
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("80x24")
	require.NoError(t, err)
	assert.Equal(t, [2]int{80, 24}, [2]int{w, h})

	for _, s := range []string{"", "80", "0x24", "80x-1", "wide"} {
		_, _, err := ParseSize(s)
		assert.Error(t, err, s)
	}
}

func TestRenderHeadless(t *testing.T) {
	ds := dataset.New("red", dataset.Origami, []dataset.Record{
		{Name: "r", Color: 0xff0000, Coords: [][3]float64{{-20, 0, 0}, {20, 0, 0}}},
	})
	out, err := RenderHeadless(context.Background(), config.Default(), ds, 20, 10, 2, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 10)
	assert.True(t, strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28ff }))

	// a cancelled run still returns the (blank) frame
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RenderHeadless(ctx, config.Default(), ds, 20, 10, 0, log.New(io.Discard, "", 0))
	assert.NoError(t, err)

	cfg := config.Default()
	cfg.Background = "nope"
	_, err = RenderHeadless(context.Background(), cfg, ds, 20, 10, 1, nil)
	assert.Error(t, err)
}
