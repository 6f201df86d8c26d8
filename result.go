package imageauth

import "image"

// Verdict messages reported to callers. Authenticity is decided by exact
// bit equality, never by the percentage.
const (
	MessageAuthentic = "Image authentic (untampered)."
	MessageTampered  = "Image tampered / altered."
)

// SecureResult is the outcome of embedding a digest into an image.
type SecureResult struct {
	// Image holds the pixel data with the digest bits substituted into the
	// LSBs of the mark prefix.
	Image *image.RGBA
	// Trailer packs the LSBs that were overwritten, in embedding order.
	// Authenticate needs it to restore the original pixels.
	Trailer []byte
	// Digest is the hash of the original pixel data that was embedded.
	Digest []byte
	// Similarity scores how close the marked pixels are to the originals,
	// 1.0 meaning indistinguishable. The embedding only touches LSBs, so
	// values stay near 1.0; it quantifies the distortion for callers that
	// care about image quality.
	Similarity float64
}

// AuthReport is the outcome of verifying a secured image.
type AuthReport struct {
	// Authentic is true when every recomputed digest bit equals the
	// embedded one.
	Authentic bool
	// MatchCount is the number of agreeing bit positions.
	MatchCount int
	// MarkBits is the number of positions compared.
	MarkBits int
	// Percentage is MatchCount over MarkBits as a percentage, rounded to
	// two decimals. Diagnostic only.
	Percentage float64
	// Restored holds the pixel data with the original LSBs written back.
	Restored *image.RGBA
}

// Message renders the verdict in the form shown to end users.
func (r *AuthReport) Message() string {
	if r.Authentic {
		return MessageAuthentic
	}
	return MessageTampered
}
