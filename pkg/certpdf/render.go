package certpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// A4 portrait in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0

	marginMM   = 20.0
	qrCodeSize = 50
)

type DoorInfo struct {
	SerialNumber  string
	DrawingNumber string
	DoorNumber    string
	JobNumber     string
	PoNumber      string
	DoorType      string
	Size          string
	Pressure      int
}

type CheckLine struct {
	Name    string
	Checked bool
	Notes   string
}

type CertificateData struct {
	Door         DoorInfo
	Checks       []CheckLine
	EngineerName string
	CertifiedAt  time.Time
	// VerifyURL is encoded into the QR code on the certificate.
	VerifyURL string
	// SignaturePath is an optional image stamped above the engineer line.
	SignaturePath string
}

type Renderer struct {
	cfg        *Config
	fontFamily *canvas.FontFamily
}

func NewRenderer(cfg *Config) (*Renderer, error) {
	family := canvas.NewFontFamily("certificate")
	var lastErr error
	for _, name := range cfg.FontNames {
		if err := family.LoadSystemFont(name, canvas.FontRegular); err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, fmt.Errorf("failed to load any certificate font: %w", lastErr)
	}

	return &Renderer{
		cfg:        cfg,
		fontFamily: family,
	}, nil
}

// Render produces the final certificate PDF and returns its path.
// The caller owns the returned file and should remove it after upload.
func (r *Renderer) Render(data CertificateData) (string, error) {
	tmpDir, err := os.MkdirTemp(r.cfg.TmpDir, "cert-*")
	if err != nil {
		return "", fmt.Errorf("failed to create tmp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	basePdf := filepath.Join(tmpDir, "base.pdf")
	if err := r.renderPage(data, basePdf); err != nil {
		return "", err
	}

	qrPath := filepath.Join(tmpDir, "verify.png")
	if err := GenerateQRCode(data.VerifyURL, qrPath, qrCodeSize); err != nil {
		return "", err
	}

	withQr := filepath.Join(tmpDir, "with_qr.pdf")
	if err := EmbedQRCodeToPdf(basePdf, withQr, qrPath, nil); err != nil {
		return "", err
	}

	stamped := withQr
	if data.SignaturePath != "" {
		stamped = filepath.Join(tmpDir, "signed.pdf")
		// Signature sits above the engineer line near the page bottom.
		if err := StampImageToPdf(withQr, stamped, data.SignaturePath, nil, 70, 60, 0.4); err != nil {
			return "", err
		}
	}

	outFile := filepath.Join(r.cfg.OutputDir, fmt.Sprintf("certificate_%s_%d.pdf", data.Door.SerialNumber, time.Now().UnixNano()))
	if err := OptimizePdf(stamped, outFile); err != nil {
		return "", err
	}

	return outFile, nil
}

func (r *Renderer) renderPage(data CertificateData, outFile string) error {
	c := canvas.New(pageWidthMM, pageHeightMM)
	ctx := canvas.NewContext(c)
	// Draw top-down like the layout reads
	ctx.SetCoordSystem(canvas.CartesianIV)

	titleFace := r.fontFamily.Face(22.0, canvas.Black, canvas.FontBold, canvas.FontNormal)
	headingFace := r.fontFamily.Face(13.0, canvas.Black, canvas.FontBold, canvas.FontNormal)
	bodyFace := r.fontFamily.Face(11.0, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	smallFace := r.fontFamily.Face(9.0, canvas.Darkgray, canvas.FontRegular, canvas.FontNormal)

	y := marginMM + 5.0
	ctx.DrawText(pageWidthMM/2, y, canvas.NewTextLine(titleFace, "Pressure Door Test Certificate", canvas.Center))
	y += 10.0
	ctx.DrawText(pageWidthMM/2, y, canvas.NewTextLine(smallFace, fmt.Sprintf("Serial %s", data.Door.SerialNumber), canvas.Center))
	y += 14.0

	ctx.DrawText(marginMM, y, canvas.NewTextLine(headingFace, "Door", canvas.Left))
	y += 7.0
	for _, row := range [][2]string{
		{"Serial number", data.Door.SerialNumber},
		{"Drawing number", data.Door.DrawingNumber},
		{"Door number", data.Door.DoorNumber},
		{"Job number", data.Door.JobNumber},
		{"Purchase order", data.Door.PoNumber},
		{"Type", data.Door.DoorType},
		{"Size", fmt.Sprintf("%s m", data.Door.Size)},
		{"Test pressure", fmt.Sprintf("%d mbar", data.Door.Pressure)},
	} {
		if row[1] == "" {
			continue
		}
		ctx.DrawText(marginMM, y, canvas.NewTextLine(bodyFace, row[0], canvas.Left))
		ctx.DrawText(marginMM+60.0, y, canvas.NewTextLine(bodyFace, row[1], canvas.Left))
		y += 6.0
	}

	y += 8.0
	ctx.DrawText(marginMM, y, canvas.NewTextLine(headingFace, "Inspection checklist", canvas.Left))
	y += 7.0
	for _, check := range data.Checks {
		mark := "[ ]"
		if check.Checked {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s  %s", mark, check.Name)
		if check.Notes != "" {
			line = fmt.Sprintf("%s (%s)", line, check.Notes)
		}
		ctx.DrawText(marginMM, y, canvas.NewTextLine(bodyFace, line, canvas.Left))
		y += 6.0
	}

	signY := pageHeightMM - marginMM - 20.0
	ctx.DrawText(marginMM, signY, canvas.NewTextLine(bodyFace, fmt.Sprintf("Certified by: %s", data.EngineerName), canvas.Left))
	ctx.DrawText(marginMM, signY+7.0, canvas.NewTextLine(bodyFace, fmt.Sprintf("Date: %s", data.CertifiedAt.Format("2 January 2006")), canvas.Left))
	ctx.DrawText(marginMM, pageHeightMM-marginMM, canvas.NewTextLine(smallFace, "Scan the QR code to verify this certificate.", canvas.Left))

	if err := renderers.Write(outFile, c); err != nil {
		return fmt.Errorf("failed to write certificate page: %w", err)
	}
	return nil
}
