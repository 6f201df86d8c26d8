// Package bitconv converts between bit sequences and bytes, most significant
// bit first.
package bitconv

// Pack groups bits into bytes MSB-first. Only complete groups of eight are
// emitted: a trailing partial group is dropped, never padded, so callers that
// need every bit back must supply a length that is a multiple of eight. This
// truncating policy matches the wire format of the secure trailer.
func Pack(bits []bool) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var v byte
		for j := range 8 {
			v <<= 1
			if bits[i+j] {
				v |= 1
			}
		}
		out = append(out, v)
	}
	return out
}

// Unpack expands each byte into eight bits MSB-first. When expectedBits is
// non-negative the result is cut to exactly expectedBits entries; if b holds
// fewer bits than requested the shorter sequence is returned as is. Pass a
// negative expectedBits to expand everything.
func Unpack(b []byte, expectedBits int) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (bb>>uint(i))&1 == 1)
		}
	}
	if expectedBits >= 0 && expectedBits < len(bits) {
		bits = bits[:expectedBits]
	}
	return bits
}
