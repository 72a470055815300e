package facemark

import (
	"fmt"
	"image"

	"github.com/esimov/facemark/utils"
)

// Box is an axis aligned face region in image coordinates.
type Box struct {
	X, Y          int
	Width, Height int
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Params holds the multi-scale detection parameters.
type Params struct {
	// ScaleFactor is the multiplicative step between successive search window sizes.
	ScaleFactor float64
	// MinNeighbors is the number of overlapping raw detections
	// required before a region is reported as a face.
	MinNeighbors int
	// MinSize and MaxSize bound the search window side in pixels.
	// A zero MaxSize means the largest image dimension.
	MinSize int
	MaxSize int
}

// DefaultParams are the parameters used on every detection run.
var DefaultParams = Params{
	ScaleFactor:  1.1,
	MinNeighbors: 5,
	MinSize:      20,
}

// maxSize resolves the upper bound of the search window for a w x h image.
func (p Params) maxSize(w, h int) int {
	m := utils.Max(w, h)
	if p.MaxSize > 0 {
		return utils.Min(p.MaxSize, m)
	}
	return m
}

// Detector finds faces in a grayscale pixel buffer.
// The returned boxes are deterministic for identical input but carry no ordering guarantee.
type Detector interface {
	Detect(gray *image.Gray, p Params) ([]Box, error)
}

// NewDetectorFn constructs a detector from the cascade file found at path.
type NewDetectorFn func(path string) (Detector, error)

// DetectError is returned when the cascade cannot be loaded or the detection fails.
type DetectError struct {
	Cascade string
	Err     error
}

func (e *DetectError) Error() string {
	return fmt.Sprintf("face detection failed (cascade %q): %v", e.Cascade, e.Err)
}

func (e *DetectError) Unwrap() error { return e.Err }
