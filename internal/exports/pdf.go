// Package exports turns an ordered list of local page images into a single
// PDF document.
package exports

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"

	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Assemble writes one PDF at outputPath containing the images at imagePaths,
// in the given order, one page per image sized to the image dimensions. It
// fails without touching outputPath when the list is empty or any input is
// unreadable.
func Assemble(imagePaths []string, outputPath string) error {
	if len(imagePaths) == 0 {
		return errors.New("no images to assemble")
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})

	for _, p := range imagePaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading page image: %w", err)
		}
		if err := addPage(&pdf, data); err != nil {
			return fmt.Errorf("adding page %s: %w", filepath.Base(p), err)
		}
	}

	if err := pdf.WritePdf(outputPath); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

func addPage(pdf *gopdf.GoPdf, data []byte) error {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	// gopdf embeds JPEG and PNG directly; anything else (webp) is
	// re-encoded to JPEG first.
	switch format {
	case "jpeg", "png":
	default:
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("converting %s image to JPEG: %w", format, err)
		}
		data = buf.Bytes()
	}

	holder, err := gopdf.ImageHolderByBytes(data)
	if err != nil {
		return fmt.Errorf("creating image holder: %w", err)
	}

	bounds := img.Bounds()
	pdf.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{
		W: float64(bounds.Dx())*72/128 - 1,
		H: float64(bounds.Dy())*72/128 - 1,
	}})
	return pdf.ImageByHolder(holder, 0, 0, nil)
}
