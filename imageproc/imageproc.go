// Package imageproc normalizes uploaded images to the fixed frames the
// storefront uses (banners 1400x480, food photos 600x400).
package imageproc

import (
	"fmt"
	"image"
	"image/color"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	BannerWidth  = 1400
	BannerHeight = 480
	FoodWidth    = 600
	FoodHeight   = 400
)

// Normalize fits img into exactly w by h. Images that cover the target frame are
// center-cropped; smaller images are centered on a white canvas. Any source
// ratio is accepted.
func Normalize(img image.Image, w, h int) *image.NRGBA {
	bounds := img.Bounds()
	if bounds.Dx() >= w && bounds.Dy() >= h {
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	}
	fitted := imaging.Fit(img, w, h, imaging.Lanczos)
	return imaging.PasteCenter(imaging.New(w, h, color.White), fitted)
}

// SaveUpload decodes the uploaded file, normalizes it to w by h and writes it
// under dir with a collision-resistant generated name. Returns the stored
// filename.
func SaveUpload(fh *multipart.FileHeader, dir string, w, h int) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("uploaded file is not a valid image: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s.jpg", time.Now().Unix(), uuid.NewString())
	if err := imaging.Save(Normalize(img, w, h), filepath.Join(dir, name), imaging.JPEGQuality(90)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return name, nil
}

// Remove deletes a stored image, tolerating one that is already gone. Used as
// the compensating action when the DB write after an upload fails, and when
// replacing an old image.
func Remove(dir, name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(dir, name))
}
