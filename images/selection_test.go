package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sourceOfWidth builds a square source of the given edge length.
func sourceOfWidth(t *testing.T, width int) *Source {
	t.Helper()
	src, err := NewSource(make([]byte, width*width*4), width, width)
	require.NoError(t, err)
	return src
}

func TestSelectSource(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		target int
		want   int // index into widths of the expected pick
	}{
		{name: "exact match", widths: []int{16, 32, 256}, target: 32, want: 1},
		{name: "exact match beats larger candidates", widths: []int{16, 32, 48}, target: 32, want: 1},
		{name: "latest exact match wins", widths: []int{32, 16, 32}, target: 32, want: 2},
		{name: "smallest wider source", widths: []int{16, 256, 64}, target: 48, want: 2},
		{name: "latest wins on equal widths", widths: []int{64, 64}, target: 48, want: 1},
		{name: "upscale largest when all smaller", widths: []int{16, 32, 24}, target: 256, want: 1},
		{name: "latest largest wins on tie", widths: []int{32, 16, 32}, target: 256, want: 2},
		{name: "single source serves any target", widths: []int{48}, target: 16, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make([]*Source, len(tt.widths))
			for i, w := range tt.widths {
				sources[i] = sourceOfWidth(t, w)
			}

			got, err := SelectSource(sources, tt.target)
			require.NoError(t, err, "selection over a non-empty collection should succeed")
			assert.Same(t, sources[tt.want], got, "expected the %dpx source at index %d", tt.widths[tt.want], tt.want)
		})
	}
}

func TestSelectSourceEmpty(t *testing.T) {
	got, err := SelectSource(nil, 32)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoSources, "empty collection should report ErrNoSources")
}

// A later, larger source must not displace an existing exact match.
func TestSelectSourceExactMatchIsStable(t *testing.T) {
	sources := []*Source{sourceOfWidth(t, 16), sourceOfWidth(t, 32)}

	got, err := SelectSource(sources, 32)
	require.NoError(t, err)
	assert.Same(t, sources[1], got)

	sources = append(sources, sourceOfWidth(t, 48))
	got, err = SelectSource(sources, 32)
	require.NoError(t, err)
	assert.Same(t, sources[1], got, "adding a 48px source must not outrank the exact 32px match")
}
