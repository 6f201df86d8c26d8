// Package pixelfold converts between a pixel's three 8-bit channels and a
// single 24-bit scalar, the unit the LSB codec operates on.
package pixelfold

// Fold packs r, g, b into (r<<16)|(g<<8)|b.
func Fold(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unfold is the exact inverse of Fold.
func Unfold(v uint32) (r, g, b uint8) {
	return uint8(v >> 16 & 0xFF), uint8(v >> 8 & 0xFF), uint8(v & 0xFF)
}

// LSB reports the least significant bit of a folded value, which is the
// least significant bit of the pixel's blue channel.
func LSB(v uint32) uint8 {
	return uint8(v & 1)
}

// WithLSB returns v with its least significant bit replaced by bit.
// Only bit's lowest bit is used.
func WithLSB(v uint32, bit uint8) uint32 {
	return (v &^ 1) | uint32(bit&1)
}
