// Package lsb reads and writes the least significant bits of a prefix of a
// pixel grid. Each pixel is folded to a 24-bit scalar, its lowest bit is
// substituted, and the channels are unfolded back; there is never any carry
// between channels.
//
// Callers validate that the grid holds at least as many pixels as bits
// before invoking these functions.
package lsb

import (
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelfold"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelgrid"
)

// Mark is the bit source consumed during embedding.
type Mark interface {
	// Bit returns the bit at the given position, 0 or 1.
	Bit(at int) uint8
	// Len returns the number of bits carried by the mark.
	Len() int
}

// Embed writes mark bits into the LSBs of the first mark.Len() pixels of a
// copy of grid, leaving grid untouched. It returns the copy and the original
// LSBs in pixel order, the side channel a later Restore needs.
func Embed(grid pixelgrid.Grid, mark Mark) (pixelgrid.Grid, []bool) {
	out := grid.Clone()
	original := make([]bool, mark.Len())
	for i := range original {
		r, g, b := out.Pixel(i)
		val := pixelfold.Fold(r, g, b)
		original[i] = pixelfold.LSB(val) == 1
		r, g, b = pixelfold.Unfold(pixelfold.WithLSB(val, mark.Bit(i)))
		out.SetPixel(i, r, g, b)
	}
	return out, original
}

// Extract reads the LSBs currently held by the first n pixels. On a secured
// image these are the digest bits claimed at secure time, possibly altered
// by tampering since.
func Extract(grid pixelgrid.Grid, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		r, g, b := grid.Pixel(i)
		bits[i] = pixelfold.LSB(pixelfold.Fold(r, g, b)) == 1
	}
	return bits
}

// Restore writes the recorded original LSBs back into a copy of grid,
// reconstructing the pixel data as it was before embedding. The trailer bits
// themselves are taken on faith; nothing in the format protects them.
func Restore(grid pixelgrid.Grid, original []bool) pixelgrid.Grid {
	out := grid.Clone()
	for i, bit := range original {
		r, g, b := out.Pixel(i)
		val := pixelfold.Fold(r, g, b)
		var v uint8
		if bit {
			v = 1
		}
		r, g, b = pixelfold.Unfold(pixelfold.WithLSB(val, v))
		out.SetPixel(i, r, g, b)
	}
	return out
}

// MatchCount reports how many positions of a agree with b. Positions beyond
// the shorter sequence count as mismatches.
func MatchCount(a, b []bool) int {
	matches := 0
	for i := range a {
		if i < len(b) && a[i] == b[i] {
			matches++
		}
	}
	return matches
}
