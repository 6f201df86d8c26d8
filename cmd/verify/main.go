// Command verify checks a secured image stream and reports whether the
// pixels still match the embedded digest.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/imagecodec"
)

func main() {
	in := flag.String("in", "", "secured image file to verify")
	restored := flag.String("restored", "", "write the restored original image to this path")
	flag.Parse()

	if *in == "" {
		log.Fatal("Provide a secured image with -in")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if len(data) < imageauth.MinBytes+imageauth.TrailerBytes {
		log.Fatalf("File too small to hold a secured image: %d bytes", len(data))
	}

	trailer := data[len(data)-imageauth.TrailerBytes:]
	src, format, err := imagecodec.Decode(data[:len(data)-imageauth.TrailerBytes])
	if err != nil {
		log.Fatalf("Failed to decode image: %v", err)
	}

	report, err := imageauth.Authenticate(context.Background(), src, trailer)
	if err != nil {
		log.Fatalf("Failed to authenticate: %v", err)
	}

	log.Printf("%s", report.Message())
	log.Printf("Digest bits matching: %d/%d (%.2f%%)",
		report.MatchCount, report.MarkBits, report.Percentage)

	if *restored != "" {
		encoded, used, err := imagecodec.EncodeBytes(report.Restored, format)
		if err != nil {
			log.Fatalf("Failed to encode restored image: %v", err)
		}
		if err := os.WriteFile(*restored, encoded, 0o644); err != nil {
			log.Fatalf("Failed to write restored image: %v", err)
		}
		log.Printf("Restored image written to %s (%s)", *restored, used)
	}

	if !report.Authentic {
		os.Exit(1)
	}
}
