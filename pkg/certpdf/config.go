// Package certpdf renders the pressure test certificate PDF for one door:
// a canvas-drawn page with the door identity, checklist result and engineer
// sign-off, a verification QR code and an optional stamped signature image.
package certpdf

import (
	"fmt"
	"os"
)

type Config struct {
	// Directory where rendered certificates are stored before upload.
	OutputDir string
	// Directory for temporary artifacts (QR images, intermediate PDFs),
	// removed after rendering.
	TmpDir string
	// Preferred system font families, tried in order.
	FontNames []string
}

func NewDefaultConfig() *Config {
	cfg := Config{
		OutputDir: fmt.Sprintf("%s/doortrack/certificates/output", os.TempDir()),
		TmpDir:    fmt.Sprintf("%s/doortrack/certificates/tmp", os.TempDir()),
		FontNames: []string{"Liberation Serif", "DejaVu Serif", "serif"},
	}

	// Create the directories if they do not exist
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
	}
	if err := os.MkdirAll(cfg.TmpDir, 0755); err != nil {
		fmt.Printf("Error creating tmp directory: %v\n", err)
	}

	return &cfg
}
