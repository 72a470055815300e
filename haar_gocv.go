//go:build gocv

package facemark

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

// HaarCascade is the file name of the OpenCV frontal face cascade, read from the working directory.
const HaarCascade = "haarcascade_frontalface_default.xml"

// HaarDetector runs an OpenCV Haar cascade classifier.
// It must be closed after use to release the native classifier.
type HaarDetector struct {
	classifier gocv.CascadeClassifier
	cascade    string
}

var _ Detector = (*HaarDetector)(nil)

// NewHaarDetector loads the cascade definition found at path.
func NewHaarDetector(path string) (Detector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, &DetectError{Cascade: path, Err: errors.New("unable to load the cascade classifier")}
	}
	return &HaarDetector{classifier: classifier, cascade: path}, nil
}

// Detect implements the Detector interface.
func (d *HaarDetector) Detect(gray *image.Gray, p Params) ([]Box, error) {
	b := gray.Bounds()
	if b.Empty() {
		return nil, nil
	}
	if b.Min != (image.Point{}) {
		gray = cropGray(gray)
	}

	mat, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return nil, &DetectError{Cascade: d.cascade, Err: err}
	}
	defer mat.Close()

	maxSize := p.maxSize(b.Dx(), b.Dy())
	rects := d.classifier.DetectMultiScaleWithParams(
		mat,
		p.ScaleFactor,
		p.MinNeighbors,
		0,
		image.Pt(p.MinSize, p.MinSize),
		image.Pt(maxSize, maxSize),
	)

	boxes := make([]Box, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, Box{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()})
	}
	return boxes, nil
}

// Close releases the native classifier.
func (d *HaarDetector) Close() error {
	return d.classifier.Close()
}
