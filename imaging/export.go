package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"path"

	"golang.org/x/image/draw"

	"github.com/farajfarook/pdf2md/model"
)

// ErrImageTooSmall is returned for images below the configured minimum
// size. Such images are almost always decorative, rules, bullets, spacer
// pixels, and are skipped rather than exported.
var ErrImageTooSmall = errors.New("image below minimum size")

// Config controls image export.
type Config struct {
	// Quality selects compression and downscale bounds.
	Quality Quality

	// MinWidth and MinHeight filter out decorative images. Either
	// dimension below its minimum rejects the image.
	MinWidth  int
	MinHeight int
}

// DefaultConfig returns the export settings used by NewExporter.
func DefaultConfig() Config {
	return Config{
		Quality:   QualityMedium,
		MinWidth:  50,
		MinHeight: 50,
	}
}

// Exporter encodes page images for the converted document.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default settings.
func NewExporter() *Exporter {
	return NewExporterWithConfig(DefaultConfig())
}

// NewExporterWithConfig creates an exporter with custom settings.
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// ExportedImage is an encoded page image ready to be written out.
type ExportedImage struct {
	Name   string // file name, e.g. image_page3_1.jpg
	Format string // "jpeg" or "png"
	Page   int
	Seq    int
	Width  int // pixels, after any downscale
	Height int
	Data   []byte
}

// Asset builds the model asset for this image placed at bbox on its page.
// dir, when set, prefixes the asset path with forward slashes so the path
// drops straight into a Markdown link.
func (x *ExportedImage) Asset(bbox model.BBox, dir string) model.ImageAsset {
	assetPath := x.Name
	if dir != "" {
		assetPath = path.Join(dir, x.Name)
	}
	return model.ImageAsset{
		BBox:   bbox,
		Page:   x.Page,
		Seq:    x.Seq,
		Path:   assetPath,
		Width:  x.Width,
		Height: x.Height,
		Format: x.Format,
	}
}

// TooSmall reports whether the image falls under the minimum size filter.
func (e *Exporter) TooSmall(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() < e.config.MinWidth || b.Dy() < e.config.MinHeight
}

// Export encodes one page image. Images under the minimum size return an
// error wrapping ErrImageTooSmall that names the image.
func (e *Exporter) Export(img image.Image, pageNumber, seq int) (*ExportedImage, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	if e.TooSmall(img) {
		return nil, fmt.Errorf("image_page%d_%d: %w", pageNumber, seq, ErrImageTooSmall)
	}

	settings := e.config.Quality.Settings()
	fitted := Fit(img, settings.MaxWidth, settings.MaxHeight)

	data, format, err := encode(fitted, settings.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("image_page%d_%d: %w", pageNumber, seq, err)
	}

	bounds := fitted.Bounds()
	return &ExportedImage{
		Name:   FileName(pageNumber, seq, format),
		Format: format,
		Page:   pageNumber,
		Seq:    seq,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Data:   data,
	}, nil
}

// Fit scales an image down to fit within maxWidth x maxHeight, keeping the
// aspect ratio. Images already inside the bounds are returned as is; Fit
// never upscales.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || maxHeight <= 0 || (w <= maxWidth && h <= maxHeight) {
		return img
	}

	scale := math.Min(float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
	dw := int(math.Round(float64(w) * scale))
	dh := int(math.Round(float64(h) * scale))
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// encode writes the image as JPEG, or as PNG when transparency would be
// lost.
func encode(img image.Image, jpegQuality int) ([]byte, string, error) {
	var buf bytes.Buffer
	if hasAlpha(img) {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "jpeg", nil
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// FileName returns the output file name for a page image. The base name is
// the image's stable identity, image_page{page}_{seq}.
func FileName(page, seq int, format string) string {
	ext := format
	if format == "jpeg" {
		ext = "jpg"
	}
	return fmt.Sprintf("image_page%d_%d.%s", page, seq, ext)
}

// DefaultAlt returns the fallback alt text for images with no caption.
func DefaultAlt(page int) string {
	return fmt.Sprintf("Image from page %d", page)
}
