package facemark

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/widget"
)

// Surface receives the final bitmap of a detection run.
type Surface interface {
	Set(img image.Image)
}

// Panel is the image area of the main window.
// It owns the bitmap currently shown; replacing it releases the previous one.
type Panel struct {
	img image.Image
	src paint.ImageOp
}

var _ Surface = (*Panel)(nil)

// Set replaces the displayed bitmap.
func (p *Panel) Set(img image.Image) {
	p.src = paint.NewImageOp(img)
	p.img = img
}

// Current returns the displayed bitmap, or nil if nothing was shown yet.
func (p *Panel) Current() image.Image {
	return p.img
}

// Layout draws the bitmap scaled down to fit the available space.
func (p *Panel) Layout(gtx C) D {
	if p.img == nil {
		return D{Size: gtx.Constraints.Max}
	}
	return widget.Image{
		Src:      p.src,
		Scale:    1 / float32(gtx.Dp(1)),
		Fit:      widget.Contain,
		Position: layout.Center,
	}.Layout(gtx)
}
