package imagecodec_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/imagecodec"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func genImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 5), uint8(y * 9), uint8(x + y), 255})
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	src := genImage(24, 18)

	test := []struct {
		name       string
		encode     func(w io.Writer, img image.Image) error
		wantFormat imagecodec.Format
	}{
		{"png", png.Encode, imagecodec.PNG},
		{"jpeg", func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
		}, imagecodec.JPEG},
		{"gif", func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, imagecodec.GIF},
		{"bmp", bmp.Encode, imagecodec.BMP},
		{"tiff", func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, imagecodec.TIFF},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.encode(&buf, src))

			img, format, err := imagecodec.Decode(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, src.Bounds().Size(), img.Bounds().Size())
		})
	}

	t.Run("invalid bytes", func(t *testing.T) {
		test := [][]byte{
			nil,
			{},
			[]byte("not an image at all"),
			{0x89, 0x50, 0x4e}, // truncated png magic
		}
		for _, data := range test {
			_, _, err := imagecodec.Decode(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, imageauth.ErrInvalidImage)
		}
	})
}

// Re-encoding a decoded image and decoding it again must reproduce the pixel
// data bit-exact; the digest invariant depends on it.
func TestEncodeRoundTrip(t *testing.T) {
	src := genImage(24, 18)

	test := []struct {
		name     string
		encode   func(w io.Writer, img image.Image) error
		wantUsed imagecodec.Format
	}{
		{"png stays png", png.Encode, imagecodec.PNG},
		{"jpeg maps to png", func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
		}, imagecodec.PNG},
		{"gif maps to png", func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, imagecodec.PNG},
		{"bmp stays bmp", bmp.Encode, imagecodec.BMP},
		{"tiff stays tiff", func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, imagecodec.TIFF},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.encode(&buf, src))

			decoded, format, err := imagecodec.Decode(buf.Bytes())
			require.NoError(t, err)
			first := pixelgrid.FromImage(decoded)

			data, used, err := imagecodec.EncodeBytes(first.Image(), format)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUsed, used)

			again, reFormat, err := imagecodec.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, used, reFormat)
			assert.True(t, first.Equal(pixelgrid.FromImage(again)))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Run("MIME", func(t *testing.T) {
		test := map[imagecodec.Format]string{
			imagecodec.PNG:  "image/png",
			imagecodec.JPEG: "image/jpeg",
			imagecodec.GIF:  "image/gif",
			imagecodec.BMP:  "image/bmp",
			imagecodec.TIFF: "image/tiff",
		}
		for format, want := range test {
			assert.Equal(t, want, format.MIME())
		}
	})

	t.Run("Lossless", func(t *testing.T) {
		test := map[imagecodec.Format]imagecodec.Format{
			imagecodec.PNG:  imagecodec.PNG,
			imagecodec.JPEG: imagecodec.PNG,
			imagecodec.GIF:  imagecodec.PNG,
			imagecodec.BMP:  imagecodec.BMP,
			imagecodec.TIFF: imagecodec.TIFF,
		}
		for format, want := range test {
			assert.Equal(t, want, format.Lossless())
		}
	})

	t.Run("unsupported encode", func(t *testing.T) {
		_, _, err := imagecodec.EncodeBytes(genImage(4, 4), imagecodec.Format("webp"))
		require.Error(t, err)
	})
}
