package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformApply(t *testing.T) {
	src := [][3]float64{{1, 2, 3}, {-4, 5, -6}}

	flipped := FlipZ.ApplyAll(src)
	require.Len(t, flipped, len(src))
	for i, c := range src {
		assert.Equal(t, c[0], flipped[i].X())
		assert.Equal(t, c[1], flipped[i].Y())
		assert.Equal(t, -c[2], flipped[i].Z())
	}

	same := Identity.ApplyAll(src)
	assert.Equal(t, []mgl64.Vec3{{1, 2, 3}, {-4, 5, -6}}, same)

	assert.Empty(t, FlipZ.ApplyAll(nil))
}

func TestParseTransform(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Transform
	}{
		{"flipz", FlipZ},
		{" FlipZ ", FlipZ},
		{"identity", Identity},
		{"none", Identity},
	} {
		got, err := ParseTransform(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := ParseTransform("mirror")
	assert.Error(t, err)

	var tr Transform
	require.NoError(t, tr.UnmarshalText([]byte("flipz")))
	assert.Equal(t, FlipZ, tr)
	b, err := tr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "flipz", string(b))
}
