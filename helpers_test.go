package facemark

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var bkgColor = color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}

// newFilledImage returns a w x h image painted with c.
func newFilledImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// newFaceImage returns a black w x h image with a white square of the given side in its center.
func newFaceImage(w, h, side int) (*image.NRGBA, image.Rectangle) {
	img := newFilledImage(w, h, color.Black)
	face := image.Rect((w-side)/2, (h-side)/2, (w+side)/2, (h+side)/2)
	draw.Draw(img, face, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img, face
}

// writePNG encodes img into a temporary file and returns its path.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	return writeImage(t, name, func(w io.Writer) error { return png.Encode(w, img) })
}

// writeImage stores the output of encode in a temporary file named name.
func writeImage(t *testing.T, name string, encode func(io.Writer) error) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, encode(f))
	return path
}

// brightCenterCascade builds a single tree pigo cascade of depth one. It fires
// on the windows whose center pixel is brighter than their top left corner.
func brightCenterCascade() []byte {
	le := binary.LittleEndian

	buf := make([]byte, 8)
	buf = le.AppendUint32(buf, 1) // tree depth
	buf = le.AppendUint32(buf, 1) // number of trees
	// Compare the center pixel with the one at (-s/2, -s/2).
	buf = append(buf, 0, 0, byte(0x81), byte(0x81))
	buf = le.AppendUint32(buf, math.Float32bits(1.0))  // center brighter
	buf = le.AppendUint32(buf, math.Float32bits(-1.0)) // center darker or equal
	buf = le.AppendUint32(buf, math.Float32bits(0.0))  // threshold
	return buf
}

// writeCascade stores the test cascade into a temporary file and returns its path.
func writeCascade(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), PigoCascade)
	require.NoError(t, os.WriteFile(path, brightCenterCascade(), 0644))
	return path
}

// fakeDetector returns a fixed set of boxes and records the buffer it received.
type fakeDetector struct {
	boxes  []Box
	err    error
	gray   *image.Gray
	params Params
	closed bool
}

func (d *fakeDetector) Detect(gray *image.Gray, p Params) ([]Box, error) {
	d.gray, d.params = gray, p
	return d.boxes, d.err
}

func (d *fakeDetector) Close() error {
	d.closed = true
	return nil
}

// fakeSurface records the bitmaps it receives.
type fakeSurface struct {
	img   image.Image
	calls int
}

func (s *fakeSurface) Set(img image.Image) {
	s.img = img
	s.calls++
}
