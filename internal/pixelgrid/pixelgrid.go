// Package pixelgrid holds the row-major RGB pixel buffer the codec works on
// and its canonical byte serialization.
package pixelgrid

import (
	"crypto/sha256"
	"image"

	"golang.org/x/image/draw"
)

// DigestSize is the length in bytes of the digest computed over a grid.
const DigestSize = sha256.Size

// Grid is a rectangular pixel buffer, three bytes per pixel in R, G, B order,
// rows top to bottom. The zero value is an empty grid. Methods write through
// the shared backing slice; use Clone before mutating a grid that must keep
// its source intact.
type Grid struct {
	bounds        image.Rectangle
	width, height int
	pix           []uint8
}

// New returns an all-black grid of the given size.
func New(width, height int) Grid {
	return Grid{
		bounds: image.Rect(0, 0, width, height),
		width:  width,
		height: height,
		pix:    make([]uint8, 3*width*height),
	}
}

// FromImage flattens src into a grid, dropping any alpha channel. Pixels are
// read through a premultiplied RGBA conversion, so fully opaque images come
// through byte-exact.
func FromImage(src image.Image) Grid {
	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)

	g := Grid{
		bounds: bounds,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	g.pix = make([]uint8, 3*g.width*g.height)
	idx := 0
	for y := range g.height {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*g.width]
		for x := range g.width {
			g.pix[idx] = row[4*x]
			g.pix[idx+1] = row[4*x+1]
			g.pix[idx+2] = row[4*x+2]
			idx += 3
		}
	}
	return g
}

// Width returns the grid width in pixels.
func (g Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g Grid) Height() int { return g.height }

// Pixels returns the number of pixels in row-major flattening order.
func (g Grid) Pixels() int { return g.width * g.height }

// Pixel returns the channels of the i-th pixel in flattening order.
func (g Grid) Pixel(i int) (r, gr, b uint8) {
	return g.pix[3*i], g.pix[3*i+1], g.pix[3*i+2]
}

// SetPixel overwrites the channels of the i-th pixel in flattening order.
func (g Grid) SetPixel(i int, r, gr, b uint8) {
	g.pix[3*i] = r
	g.pix[3*i+1] = gr
	g.pix[3*i+2] = b
}

// Bytes exposes the raw serialization: row-major, R then G then B per pixel.
// The slice is the grid's backing store, not a copy.
func (g Grid) Bytes() []byte { return g.pix }

// Digest computes the SHA-256 digest over the grid's serialization. Both the
// secure and the authenticate pipeline hash through this method, so the byte
// order can never diverge between them.
func (g Grid) Digest() []byte {
	sum := sha256.Sum256(g.pix)
	return sum[:]
}

// Clone returns a grid backed by a fresh copy of the pixel data.
func (g Grid) Clone() Grid {
	pix := make([]uint8, len(g.pix))
	copy(pix, g.pix)
	g.pix = pix
	return g
}

// Equal reports whether both grids have the same dimensions and pixel data.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Image rebuilds an opaque RGBA image from the grid.
func (g Grid) Image() *image.RGBA {
	dist := image.NewRGBA(g.bounds)
	idx := 0
	for y := range g.height {
		row := dist.Pix[y*dist.Stride : y*dist.Stride+4*g.width]
		for x := range g.width {
			row[4*x] = g.pix[idx]
			row[4*x+1] = g.pix[idx+1]
			row[4*x+2] = g.pix[idx+2]
			row[4*x+3] = 0xFF
			idx += 3
		}
	}
	return dist
}
