package ssim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelgrid"
)

func gradientGrid(w, h int) pixelgrid.Grid {
	g := pixelgrid.New(w, h)
	for i := 0; i < g.Pixels(); i++ {
		g.SetPixel(i, uint8(i), uint8(i*2), uint8(i*3))
	}
	return g
}

func TestIdenticalGridsScoreOne(t *testing.T) {
	g := gradientGrid(32, 32)
	score, err := Score(g, g.Clone())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestLSBNoiseBarelyMoves(t *testing.T) {
	g := gradientGrid(32, 32)
	noisy := g.Clone()
	for i := 0; i < 256; i++ {
		r, gr, b := noisy.Pixel(i)
		noisy.SetPixel(i, r, gr, b^1)
	}
	score, err := Score(g, noisy)
	require.NoError(t, err)
	assert.Greater(t, score, 0.99)
}

func TestHeavyTamperDropsScore(t *testing.T) {
	g := gradientGrid(32, 32)
	tampered := g.Clone()
	for i := 0; i < tampered.Pixels()/2; i++ {
		tampered.SetPixel(i, 255, 255, 255)
	}
	score, err := Score(g, tampered)
	require.NoError(t, err)
	assert.Less(t, score, 0.9)
}

func TestSmallGridSingleWindow(t *testing.T) {
	g := gradientGrid(3, 3)
	score, err := Score(g, g.Clone())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSizeMismatch(t *testing.T) {
	_, err := Score(gradientGrid(8, 8), gradientGrid(8, 9))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
