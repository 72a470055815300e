package facemark

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/esimov/facemark/utils"
)

// Handler runs one pick, detect, annotate and display cycle per invocation.
// It is not safe for concurrent use; the GUI calls it from its event loop only.
type Handler struct {
	Picker      FilePicker
	Surface     Surface
	NewDetector NewDetectorFn
	Cascade     string

	Params    Params
	Color     color.Color
	Thickness int

	Logger *log.Logger
}

// NewHandler returns a Handler using the default detection and annotation settings.
func NewHandler(picker FilePicker, surface Surface, newDetector NewDetectorFn, cascade string) *Handler {
	return &Handler{
		Picker:      picker,
		Surface:     surface,
		NewDetector: newDetector,
		Cascade:     cascade,
		Params:      DefaultParams,
		Color:       BoxColor,
		Thickness:   BoxThickness,
		Logger:      log.Default(),
	}
}

// Run prompts for an image and, unless the user cancels, replaces the
// surface content with the annotated image. On failure the surface is left untouched.
func (h *Handler) Run() error {
	path, err := h.Picker.Pick()
	if err != nil {
		h.logError(err)
		return err
	}
	if path == "" {
		return nil
	}

	now := time.Now()
	bitmap, boxes, err := h.Process(path)
	if err != nil {
		h.logError(err)
		return err
	}
	h.Surface.Set(bitmap)

	h.logf("%s %s %s",
		utils.DecorateText(filepath.Base(path), utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ %d face(s) detected in", len(boxes)), utils.DefaultMessage),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
	return nil
}

// Process loads the image found at path, detects the faces on its grayscale
// version and returns the annotated bitmap together with the detected boxes.
func (h *Handler) Process(path string) (*image.RGBA, []Box, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, nil, err
	}
	gray := Grayscale(img)

	boxes, err := h.detect(gray)
	if err != nil {
		return nil, nil, err
	}
	Annotate(img, boxes, h.Color, h.Thickness)

	return toDisplay(img), boxes, nil
}

// detect constructs the detector, which loads the cascade, and runs it over gray.
func (h *Handler) detect(gray *image.Gray) ([]Box, error) {
	det, err := h.NewDetector(h.Cascade)
	if err != nil {
		return nil, asDetectError(h.Cascade, err)
	}
	if c, ok := det.(io.Closer); ok {
		defer c.Close()
	}

	boxes, err := det.Detect(gray, h.Params)
	if err != nil {
		return nil, asDetectError(h.Cascade, err)
	}
	return boxes, nil
}

func (h *Handler) logf(format string, args ...any) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
	}
}

func (h *Handler) logError(err error) {
	h.logf("%s %s",
		utils.DecorateText("✘", utils.ErrorMessage),
		utils.DecorateText(err.Error(), utils.DefaultMessage),
	)
}

// asDetectError wraps err into a *DetectError unless it already is one.
func asDetectError(cascade string, err error) error {
	if _, ok := err.(*DetectError); ok {
		return err
	}
	return &DetectError{Cascade: cascade, Err: err}
}
