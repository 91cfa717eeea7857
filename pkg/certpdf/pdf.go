package certpdf

import (
	"fmt"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Stamp an image (signature, stamp) onto a PDF file.
// Position is anchored at the bottom-left corner with the given offsets in points.
// In pdfcpu, y grows upward from the anchor.
func StampImageToPdf(inFile, outFile, imageFile string, selectedPages []string, offX, offY, scale float64) error {
	ext := filepath.Ext(imageFile)
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("unsupported stamp file type: %s", ext)
	}

	description := fmt.Sprintf("pos: bl, off: %.1f %.1f, scale: %.2f abs, rotation: 0", offX, offY, scale)
	return api.AddImageWatermarksFile(inFile, outFile, selectedPages, true, imageFile, description, nil)
}

// Apply qr code to the bottom right corner of a PDF file
// if array of selected pages is provided, will apply to those pages
// otherwise apply to all pages
func EmbedQRCodeToPdf(inFile, outFile, qrCodePath string, selectedPages []string) error {
	description := "pos: br, off: -20 20, scale: 1 abs, rotation: 0"
	err := api.AddImageWatermarksFile(inFile, outFile, selectedPages, true, qrCodePath, description, nil)
	if err != nil {
		return fmt.Errorf("failed to embed QR code in PDF: %w", err)
	}
	return nil
}

// OptimizePdf also validates the file structure.
func OptimizePdf(inFile, outFile string) error {
	if err := api.OptimizeFile(inFile, outFile, nil); err != nil {
		return fmt.Errorf("failed to optimize pdf: %w", err)
	}
	return nil
}
