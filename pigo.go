package facemark

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"sort"

	"github.com/esimov/facemark/utils"
	pigo "github.com/esimov/pigo/core"
)

// PigoCascade is the file name of the pigo face finder cascade, read from the working directory.
const PigoCascade = "facefinder"

const (
	// shiftFactor is the step of the sliding window relative to its size.
	shiftFactor = 0.1
	// iouThreshold is the overlap above which two raw detections belong to the same face.
	iouThreshold = 0.2
	// minQuality is the summed cluster score a face has to exceed.
	minQuality = 5.0
)

// PigoDetector runs the pigo pixel intensity comparison cascade.
type PigoDetector struct {
	classifier *pigo.Pigo
	cascade    string
}

var _ Detector = (*PigoDetector)(nil)

// NewPigoDetector unpacks the cascade file found at path.
func NewPigoDetector(path string) (Detector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DetectError{Cascade: path, Err: err}
	}

	classifier, err := unpack(data)
	if err != nil {
		return nil, &DetectError{Cascade: path, Err: fmt.Errorf("error unpacking the cascade file: %w", err)}
	}
	return &PigoDetector{classifier: classifier, cascade: path}, nil
}

// unpack decodes the binary cascade. This will return the number of cascade trees,
// the tree depth, the threshold and the prediction from tree's leaf nodes.
// pigo indexes the packet without bound checks, so a truncated file is reported as an error.
func unpack(data []byte) (classifier *pigo.Pigo, err error) {
	if len(data) < 16 {
		return nil, errors.New("cascade file too short")
	}
	if binary.LittleEndian.Uint32(data[12:16]) == 0 {
		return nil, errors.New("cascade file contains no trees")
	}
	defer func() {
		if r := recover(); r != nil {
			classifier, err = nil, fmt.Errorf("malformed cascade file: %v", r)
		}
	}()
	return pigo.NewPigo().Unpack(data)
}

// Detect implements the Detector interface.
func (d *PigoDetector) Detect(gray *image.Gray, p Params) ([]Box, error) {
	if p.ScaleFactor <= 1.0 {
		return nil, &DetectError{Cascade: d.cascade, Err: errors.New("scale factor must be greater than 1")}
	}
	b := gray.Bounds()
	cols, rows := b.Dx(), b.Dy()
	if cols == 0 || rows == 0 {
		return nil, nil
	}
	if b.Min != (image.Point{}) {
		gray = cropGray(gray)
	}

	maxSize := p.maxSize(cols, rows)
	cParams := pigo.CascadeParams{
		MinSize:     utils.Clamp(p.MinSize, 1, maxSize),
		MaxSize:     maxSize,
		ShiftFactor: shiftFactor,
		ScaleFactor: p.ScaleFactor,

		ImageParams: pigo.ImageParams{
			Pixels: gray.Pix,
			Rows:   rows,
			Cols:   cols,
			Dim:    gray.Stride,
		},
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := d.classifier.RunCascade(cParams, 0.0)
	dets = clusterDetections(dets, p.MinNeighbors)

	boxes := make([]Box, 0, len(dets))
	for _, det := range dets {
		boxes = append(boxes, Box{
			X:      det.Col - det.Scale/2,
			Y:      det.Row - det.Scale/2,
			Width:  det.Scale,
			Height: det.Scale,
		})
	}
	return boxes, nil
}

// clusterDetections merges the overlapping raw detections into faces.
// A cluster is kept only when it gathers at least minNeighbors raw
// detections and its summed score is above minQuality.
func clusterDetections(dets []pigo.Detection, minNeighbors int) []pigo.Detection {
	sorted := make([]pigo.Detection, len(dets))
	copy(sorted, dets)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Q != b.Q {
			return a.Q > b.Q
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Scale < b.Scale
	})

	assigned := make([]bool, len(sorted))
	clusters := []pigo.Detection{}

	for i := range sorted {
		if assigned[i] {
			continue
		}
		var (
			r, c, s, n int
			q          float32
		)
		for j := range sorted {
			if assigned[j] || iou(sorted[i], sorted[j]) <= iouThreshold {
				continue
			}
			assigned[j] = true
			r += sorted[j].Row
			c += sorted[j].Col
			s += sorted[j].Scale
			q += sorted[j].Q
			n++
		}
		if n >= minNeighbors && q > minQuality {
			clusters = append(clusters, pigo.Detection{Row: r / n, Col: c / n, Scale: s / n, Q: q})
		}
	}
	return clusters
}

// iou returns the intersection over union of two square detections.
func iou(det1, det2 pigo.Detection) float64 {
	r1, c1, s1 := float64(det1.Row), float64(det1.Col), float64(det1.Scale)
	r2, c2, s2 := float64(det2.Row), float64(det2.Col), float64(det2.Scale)

	overRow := math.Max(0, math.Min(r1+s1/2, r2+s2/2)-math.Max(r1-s1/2, r2-s2/2))
	overCol := math.Max(0, math.Min(c1+s1/2, c2+s2/2)-math.Max(c1-s1/2, c2-s2/2))

	return overRow * overCol / (s1*s1 + s2*s2 - overRow*overCol)
}

// cropGray copies the buffer so that its min point is at (0, 0).
func cropGray(src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	return dst
}
