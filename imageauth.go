// Package imageauth implements a reversible least-significant-bit watermark
// used to detect tampering in raster images.
//
// Secure hashes an image's raw pixel data and writes the digest bits into
// the LSBs of a fixed prefix of pixels; the LSBs that were overwritten are
// returned as a small trailer. Authenticate reverses the process: it reads
// the embedded bits, restores the original pixels from the trailer,
// recomputes the digest, and compares. Any change to the pixel data after
// securing makes the recomputed digest disagree with the embedded bits.
//
// The trailer itself is not protected. An attacker who can rewrite both the
// pixel data and the trailer can construct an image that verifies as
// authentic; the scheme detects accidental or naive modification, not a
// determined forger.
package imageauth

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/bitconv"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/lsb"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelgrid"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/ssim"
)

// Parameters of the default scheme. The wire format depends on these values;
// peers must agree on them bit-exact.
const (
	// HashBits is the digest width in bits.
	HashBits = 256
	// MarkPixels is the number of pixels carrying one digest bit each.
	MarkPixels = HashBits
	// TrailerBytes is the length of the packed original-LSB trailer.
	TrailerBytes = HashBits / 8
	// MinBits is the minimum raw payload a securable image must hold:
	// MarkPixels pixels of three 8-bit channels.
	MinBits = MarkPixels * 3 * 8
	// MinBytes is MinBits expressed in bytes.
	MinBytes = MinBits / 8
)

var (
	ErrImageTooSmall = errors.New("image is too small to carry the watermark")
	ErrInvalidImage  = errors.New("invalid image bytes")
	ErrInvalidLength = errors.New("bit sequence length is not byte aligned")
)

// Secure embeds the pixel digest of src with the specified options.
// This is a convenience function that creates a Codec instance and calls its Secure method.
func Secure(ctx context.Context, src image.Image, opts ...Option) (*SecureResult, error) {
	c, _ := New(opts...)
	return c.Secure(ctx, src)
}

// Authenticate verifies a secured image against its trailer with the
// specified options. This is a convenience function that creates a Codec
// instance and calls its Authenticate method.
func Authenticate(ctx context.Context, src image.Image, trailer []byte, opts ...Option) (*AuthReport, error) {
	c, _ := New(opts...)
	return c.Authenticate(ctx, src, trailer)
}

// Codec carries the parameter set shared by the secure and authenticate
// pipelines. A Codec is stateless and safe for concurrent use.
type Codec struct {
	markBits int
}

// New initializes a codec. Without options the codec uses the default
// 256-bit scheme; WithMarkBits shrinks it for fast parameterized tests.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Codec) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.markBits == 0 {
		c.markBits = HashBits
	}
	return nil
}

// MarkBits returns the number of digest bits the codec embeds.
func (c *Codec) MarkBits() int { return c.markBits }

// TrailerLen returns the trailer length in bytes produced by Secure and
// expected by Authenticate.
func (c *Codec) TrailerLen() int { return c.markBits / 8 }

// MinPixels returns the smallest pixel count an image must have to pass
// through the codec.
func (c *Codec) MinPixels() int { return c.markBits }

// Secure embeds the digest of src's pixel data into the image.
//
// Process:
//  1. Flattens the image to a row-major RGB grid.
//  2. Computes the SHA-256 digest over the raw grid bytes.
//  3. Substitutes one digest bit into the LSB of each of the first
//     MarkBits pixels, recording the bits that were overwritten.
//  4. Packs the overwritten bits into the trailer.
//
// The source image is never modified. Returns an error wrapping
// ErrImageTooSmall if the image holds fewer than MinPixels pixels.
func (c *Codec) Secure(ctx context.Context, src image.Image) (*SecureResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grid := pixelgrid.FromImage(src)
	if err := c.enable(grid); err != nil {
		return nil, err
	}

	digest := grid.Digest()
	embedded, original := lsb.Embed(grid, newDigestMark(digest, c.markBits))
	similarity, err := ssim.Score(grid, embedded)
	if err != nil {
		return nil, err
	}
	return &SecureResult{
		Image:      embedded.Image(),
		Trailer:    bitconv.Pack(original),
		Digest:     digest,
		Similarity: similarity,
	}, nil
}

// Authenticate verifies a secured image against its trailer.
//
// Process:
//  1. Flattens the image to a row-major RGB grid.
//  2. Reads the embedded digest bits from the LSBs of the mark prefix.
//  3. Restores the original LSBs recorded in the trailer.
//  4. Recomputes the digest over the restored grid and compares it with
//     the embedded bits, position by position.
//
// Authentic means every bit agrees; the percentage is reported alongside
// for diagnostics and never decides the verdict. The restored image is
// returned so callers can hand the original back to the user.
func (c *Codec) Authenticate(ctx context.Context, src image.Image, trailer []byte) (*AuthReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grid := pixelgrid.FromImage(src)
	if err := c.enable(grid); err != nil {
		return nil, err
	}
	if len(trailer) != c.TrailerLen() {
		return nil, fmt.Errorf("%w: trailer is %d bytes, want %d", ErrInvalidLength, len(trailer), c.TrailerLen())
	}

	originalBits := bitconv.Unpack(trailer, c.markBits)
	embeddedBits := lsb.Extract(grid, c.markBits)
	restored := lsb.Restore(grid, originalBits)
	computedBits := bitconv.Unpack(restored.Digest(), c.markBits)

	matches := lsb.MatchCount(computedBits, embeddedBits)
	return &AuthReport{
		Authentic:  matches == c.markBits,
		MatchCount: matches,
		MarkBits:   c.markBits,
		Percentage: roundPercent(matches, c.markBits),
		Restored:   restored.Image(),
	}, nil
}

func (c *Codec) enable(grid pixelgrid.Grid) error {
	if total := grid.Pixels(); total < c.markBits {
		return fmt.Errorf("%w: %d pixels, need %d", ErrImageTooSmall, total, c.markBits)
	}
	return nil
}

// roundPercent rounds half to even; a 136/256 score reports 53.12, not 53.13.
func roundPercent(matches, total int) float64 {
	p := float64(matches) / float64(total) * 100
	return math.RoundToEven(p*100) / 100
}
