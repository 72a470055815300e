package facemark

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Main window settings.
const (
	WindowTitle  = "Face Detection GUI"
	WindowWidth  = 800
	WindowHeight = 600

	// ButtonLabel reads "Choose the image".
	ButtonLabel = "اختر الصورة"
)

var (
	defaultBkgColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	errorBkgColor   = color.NRGBA{R: 245, G: 228, B: 215, A: 0xff}
	errorFgColor    = color.NRGBA{R: 3, G: 18, B: 14, A: 0xff}
)

// Gui is the main window controller. It owns the window, the trigger
// button and the image panel, and wires the button to the Handler.
type Gui struct {
	cfg struct {
		window struct {
			w, h  float32
			title string
		}
		color struct {
			background color.NRGBA
		}
	}
	win     *app.Window
	th      *material.Theme
	btn     widget.Clickable
	panel   Panel
	handler *Handler

	// message holds the error of the last failed run, shown above the panel.
	message string
}

// NewGUI creates the controller. The detector is constructed
// with newDetector from the cascade file on every run.
func NewGUI(newDetector NewDetectorFn, cascade string) *Gui {
	g := &Gui{}
	g.cfg.window.w, g.cfg.window.h = WindowWidth, WindowHeight
	g.cfg.window.title = WindowTitle
	g.cfg.color.background = defaultBkgColor

	g.th = material.NewTheme()
	g.th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	picker := DialogPicker{Title: ButtonLabel, Extensions: SupportedExtensions}
	g.handler = NewHandler(picker, &g.panel, newDetector, cascade)

	return g
}

// Run is the core method of the Gio GUI application. It processes the
// window events until the window is closed or the ESC key is pressed.
func (g *Gui) Run(w *app.Window) error {
	g.win = w
	w.Option(
		app.Title(g.cfg.window.title),
		app.Size(unit.Dp(g.cfg.window.w), unit.Dp(g.cfg.window.h)),
	)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			g.handleKeys(gtx)
			g.layout(gtx)
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			return e.Err
		}
	}
}

func (g *Gui) handleKeys(gtx C) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			g.win.Perform(system.ActionClose)
		}
	}
}

// layout places the error banner and the image panel on top and the button at the bottom.
func (g *Gui) layout(gtx C) D {
	paint.Fill(gtx.Ops, g.cfg.color.background)

	// The handler runs synchronously: the window is not redrawn until it returns.
	if g.btn.Clicked(gtx) {
		g.choose()
	}

	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(g.layoutMessage),
		layout.Flexed(1, g.panel.Layout),
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return material.Button(g.th, &g.btn, ButtonLabel).Layout(gtx)
			})
		}),
	)
}

// choose runs the handler and records its outcome.
func (g *Gui) choose() {
	prev := g.panel.Current()
	if err := g.handler.Run(); err != nil {
		g.message = err.Error()
		return
	}
	if g.panel.Current() != prev {
		g.message = ""
	}
}

// layoutMessage shows the error of the last failed run.
func (g *Gui) layoutMessage(gtx C) D {
	if g.message == "" {
		return D{}
	}
	gtx.Constraints.Min.X = gtx.Constraints.Max.X

	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, errorBkgColor)
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				lbl := material.Body1(g.th, g.message)
				lbl.Color = errorFgColor
				return lbl.Layout(gtx)
			})
		},
	)
}
