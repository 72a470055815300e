/*
Package facemark is a small desktop utility which marks the faces found in an image.

The user picks an image through the native file dialog of the host operating system,
the faces are detected on the grayscale version of the image and the picture
is shown in a Gio window with a green rectangle around every detected face.

The default detector is the pure Go pigo cascade classifier. Its cascade file ships
in the cascade folder of this repository. The facemark command looks for it in the
working directory, in its cascade folder and next to the binary; the -cc flag
points to any other location:

	$ go run ./cmd/facemark
	$ facemark -cc /path/to/facefinder

An OpenCV Haar cascade
backend is available when building with the gocv tag:

	$ go build -tags gocv ./cmd/facemark

The pipeline can also be used without the GUI:

	package main

	import (
		"fmt"
		"github.com/esimov/facemark"
	)

	func main() {
		h := facemark.NewHandler(nil, nil, facemark.NewPigoDetector, "cascade/facefinder")

		img, faces, err := h.Process("portrait.jpg")
		if err != nil {
			fmt.Printf("Error detecting faces: %s", err.Error())
			return
		}
		fmt.Println(img.Bounds(), len(faces))
	}
*/
package facemark
