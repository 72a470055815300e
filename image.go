package facemark

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/facemark/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SupportedExtensions lists the image file types offered by the file picker.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// LoadError is returned when the selected file cannot be read or decoded as an image.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load image %q: %v", filepath.Base(e.Path), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadImage reads the image found at path into a color pixel buffer with its
// min point at (0, 0). The EXIF orientation tag is honored, so the returned buffer is upright.
func LoadImage(path string) (*image.NRGBA, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	// Formats unknown to the sniffer (TIFF among them) are left to the decoders.
	if !strings.HasPrefix(ctype, "image/") && ctype != "application/octet-stream" {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("unsupported content type %s", ctype)}
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return imaging.Clone(src), nil
}

// Grayscale converts the color buffer into a new single channel buffer.
// The luma weights are the ones used by color.GrayModel, so neutral
// colors keep their exact intensity.
func Grayscale(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			r := uint32(src.Pix[si+0])
			g := uint32(src.Pix[si+1])
			bl := uint32(src.Pix[si+2])
			dst.Pix[di] = uint8((19595*r + 38470*g + 7471*bl + 1<<15) >> 16)
			si += 4
			di++
		}
	}
	return dst
}

// toDisplay converts the annotated buffer into the alpha premultiplied
// layout expected by the GPU backed display surface.
func toDisplay(src *image.NRGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return dst
}
