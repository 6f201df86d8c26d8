package imageauth

import (
	bitstream "github.com/yyyoichi/bitstream-go"

	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/lsb"
)

// digestMark adapts a digest to bit-level reads for embedding. Bits come out
// most significant first within each byte, matching the trailer packing.
type digestMark struct {
	reader *bitstream.BitReader[uint64]
}

var _ lsb.Mark = (*digestMark)(nil)

func newDigestMark(digest []byte, bits int) *digestMark {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range digest {
		w.Write8(0, 8, b)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(bits)
	return &digestMark{reader: r}
}

// Bit returns the bit at the given position.
func (m *digestMark) Bit(at int) uint8 {
	return m.reader.Read8R(1, at)
}

// Len returns the number of bits the mark embeds.
func (m *digestMark) Len() int {
	return m.reader.Bits()
}
