// Command quality measures how close two images are on their pixel data.
// With a single input it secures the image in memory and reports the
// distortion the embedding itself introduces.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/imagecodec"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/pixelgrid"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/ssim"
)

func main() {
	pathA := flag.String("a", "", "first image file")
	pathB := flag.String("b", "", "second image file; omit to compare -a against its secured form")
	flag.Parse()

	if *pathA == "" {
		log.Fatal("Provide an image with -a")
	}

	gridA := loadGrid(*pathA)

	var gridB pixelgrid.Grid
	if *pathB != "" {
		gridB = loadGrid(*pathB)
	} else {
		res, err := imageauth.Secure(context.Background(), gridA.Image())
		if err != nil {
			log.Fatalf("Failed to secure image: %v", err)
		}
		gridB = pixelgrid.FromImage(res.Image)
		log.Printf("Comparing %s against its secured form", *pathA)
	}

	score, err := ssim.Score(gridA, gridB)
	if err != nil {
		log.Fatalf("Failed to score similarity: %v", err)
	}

	changed := 0
	for i := 0; i < gridA.Pixels(); i++ {
		ar, ag, ab := gridA.Pixel(i)
		br, bg, bb := gridB.Pixel(i)
		if ar != br || ag != bg || ab != bb {
			changed++
		}
	}

	log.Printf("Size: %dx%d", gridA.Width(), gridA.Height())
	log.Printf("SSIM: %.6f", score)
	log.Printf("Changed pixels: %d/%d (%.4f%%)",
		changed, gridA.Pixels(), float64(changed)/float64(gridA.Pixels())*100)
}

func loadGrid(path string) pixelgrid.Grid {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	img, _, err := imagecodec.Decode(data)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", path, err)
	}
	return pixelgrid.FromImage(img)
}
