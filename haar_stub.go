//go:build !gocv

package facemark

import "errors"

// HaarCascade is the file name of the OpenCV frontal face cascade, read from the working directory.
const HaarCascade = "haarcascade_frontalface_default.xml"

// ErrNoOpenCV is returned by NewHaarDetector when the binary was built without OpenCV support.
var ErrNoOpenCV = errors.New("the haar backend requires OpenCV, rebuild with -tags gocv")

// NewHaarDetector always fails: the binary was built without the gocv tag.
func NewHaarDetector(path string) (Detector, error) {
	return nil, &DetectError{Cascade: path, Err: ErrNoOpenCV}
}
