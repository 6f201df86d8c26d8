// Package imagecodec decodes and encodes the image containers the
// authentication service accepts. Decoding sniffs the container from the
// bytes; encoding maps lossy containers to a lossless one, because a secured
// image must survive re-encoding with its pixel data bit-exact.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image container by its registered sniff name.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

func (f Format) String() string { return string(f) }

// MIME returns the content type of the container.
func (f Format) MIME() string {
	return "image/" + string(f)
}

// Lossless maps the format to the container Encode actually writes. JPEG and
// GIF encoders cannot reproduce arbitrary pixel data bit-exact, so both map
// to PNG; the rest encode natively.
func (f Format) Lossless() Format {
	switch f {
	case JPEG, GIF:
		return PNG
	default:
		return f
	}
}

// Decode sniffs the container and decodes data into an image. Failures are
// reported wrapping ErrInvalidImage.
func Decode(data []byte) (image.Image, Format, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", imageauth.ErrInvalidImage, err)
	}
	return img, Format(name), nil
}

// Encode writes img to w in the lossless counterpart of f and reports the
// format actually written.
func Encode(w io.Writer, img image.Image, f Format) (Format, error) {
	f = f.Lossless()
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return "", fmt.Errorf("unsupported image format %q", f)
	}
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", f, err)
	}
	return f, nil
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(img image.Image, f Format) ([]byte, Format, error) {
	var buf bytes.Buffer
	used, err := Encode(&buf, img, f)
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), used, nil
}
