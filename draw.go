package facemark

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/facemark/utils"
)

// Annotation defaults: a pure green outline, 2 pixels wide.
var (
	BoxColor     = color.NRGBA{G: 0xff, A: 0xff}
	BoxThickness = 2
)

// Annotate draws the outline of every box onto dst, in place.
// The outline covers the outermost thickness pixels inside the box and is
// clipped to the image bounds, so no pixel outside a box border is touched.
func Annotate(dst *image.NRGBA, boxes []Box, c color.Color, thickness int) {
	thickness = utils.Max(thickness, 1)
	src := &image.Uniform{C: c}

	for _, box := range boxes {
		if box.Width <= 0 || box.Height <= 0 {
			continue
		}
		for _, edge := range outline(box.Rect(), thickness) {
			r := edge.Intersect(dst.Bounds())
			if r.Empty() {
				continue
			}
			draw.Draw(dst, r, src, image.Point{}, draw.Src)
		}
	}
}

// outline splits the border of r into the top, bottom, left and right strips.
func outline(r image.Rectangle, t int) []image.Rectangle {
	if 2*t >= r.Dx() || 2*t >= r.Dy() {
		return []image.Rectangle{r}
	}
	return []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t),
		image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+t, r.Min.X+t, r.Max.Y-t),
		image.Rect(r.Max.X-t, r.Min.Y+t, r.Max.X, r.Max.Y-t),
	}
}
