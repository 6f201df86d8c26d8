package imageauth

import "fmt"

type Option func(*Codec) error

// WithMarkBits overrides the number of digest bits embedded into the image.
// The default is HashBits, which uses the full SHA-256 digest.
//
// Smaller values embed a digest prefix into fewer pixels and shrink the
// trailer accordingly; both sides of the exchange must use the same value.
// The count must be a positive multiple of 8 no larger than HashBits, so the
// trailer always packs into whole bytes.
func WithMarkBits(bits int) Option {
	return func(c *Codec) error {
		if bits <= 0 || bits > HashBits {
			return fmt.Errorf("%w: mark bits must be in 1..%d, got %d", ErrInvalidLength, HashBits, bits)
		}
		if bits%8 != 0 {
			return fmt.Errorf("%w: mark bits must be a multiple of 8, got %d", ErrInvalidLength, bits)
		}
		c.markBits = bits
		return nil
	}
}
