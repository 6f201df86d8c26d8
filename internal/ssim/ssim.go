// Package ssim scores the structural similarity of two pixel grids on their
// luma channel. The score is a diagnostic: 1 means the images are visually
// identical, values toward 0 mean heavy distortion. LSB substitution alone
// barely moves it; real tampering does.
package ssim

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelgrid"
)

var ErrSizeMismatch = errors.New("grids differ in size")

// Rec. 601 luma weights, same as the YUV conversion in OpenCV.
const (
	yr = 0.299
	yg = 0.587
	yb = 0.114
)

// Stabilizers from the original SSIM paper, for an 8-bit dynamic range.
const (
	c1 = (0.01 * 255) * (0.01 * 255)
	c2 = (0.03 * 255) * (0.03 * 255)
)

const window = 8

// Score returns the mean SSIM over non-overlapping windows of the two grids.
// Grids smaller than one window are compared as a single window.
func Score(a, b pixelgrid.Grid) (float64, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return 0, ErrSizeMismatch
	}
	if a.Pixels() == 0 {
		return 0, ErrSizeMismatch
	}

	la := luma(a)
	lb := luma(b)
	width, height := a.Width(), a.Height()

	win := window
	if width < win || height < win {
		if width < win {
			win = width
		}
		if height < win {
			win = height
		}
	}

	var total float64
	var windows int
	wa := make([]float64, 0, win*win)
	wb := make([]float64, 0, win*win)
	for wy := 0; wy+win <= height; wy += win {
		for wx := 0; wx+win <= width; wx += win {
			wa = wa[:0]
			wb = wb[:0]
			for y := wy; y < wy+win; y++ {
				row := y * width
				wa = append(wa, la[row+wx:row+wx+win]...)
				wb = append(wb, lb[row+wx:row+wx+win]...)
			}
			total += windowScore(wa, wb)
			windows++
		}
	}
	return total / float64(windows), nil
}

func windowScore(a, b []float64) float64 {
	ma := stat.Mean(a, nil)
	mb := stat.Mean(b, nil)
	var va, vb, cov float64
	if len(a) > 1 {
		va = stat.Variance(a, nil)
		vb = stat.Variance(b, nil)
		cov = stat.Covariance(a, b, nil)
	}
	num := (2*ma*mb + c1) * (2*cov + c2)
	den := (ma*ma + mb*mb + c1) * (va + vb + c2)
	return num / den
}

func luma(g pixelgrid.Grid) []float64 {
	out := make([]float64, g.Pixels())
	for i := range out {
		r, gr, b := g.Pixel(i)
		out[i] = yr*float64(r) + yg*float64(gr) + yb*float64(b)
	}
	return out
}
