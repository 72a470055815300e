package facemark

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// FilePicker asks the user for the image to process.
// An empty path with a nil error means the user cancelled the selection.
type FilePicker interface {
	Pick() (string, error)
}

// PickerFunc adapts an ordinary function to the FilePicker interface.
type PickerFunc func() (string, error)

// Pick calls f().
func (f PickerFunc) Pick() (string, error) { return f() }

// DialogPicker opens the native "open file" dialog of the host operating system.
type DialogPicker struct {
	Title      string
	Extensions []string
}

// Pick implements the FilePicker interface.
func (d DialogPicker) Pick() (string, error) {
	patterns := make([]string, 0, len(d.Extensions))
	for _, ext := range d.Extensions {
		patterns = append(patterns, "*"+ext)
	}

	opts := []zenity.Option{zenity.Title(d.Title)}
	if len(patterns) > 0 {
		opts = append(opts, zenity.FileFilter{Name: "Image files", Patterns: patterns})
	}

	return pickResult(zenity.SelectFile(opts...))
}

// pickResult maps the dialog outcome to the FilePicker contract:
// a cancelled dialog yields an empty path and no error.
func pickResult(path string, err error) (string, error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return path, nil
}
