package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"github.com/esimov/facemark"
	"github.com/esimov/facemark/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌─┐┌┬┐┌─┐┬─┐┬┌─
├┤ ├─┤│  ├┤ │││├─┤├┬┘├┴┐
└  ┴ ┴└─┘└─┘┴ ┴┴ ┴┴└─┴ ┴

Mark the faces found in an image.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	backend = flag.String("backend", "pigo", "Face detector backend: pigo or haar")
	cascade = flag.String("cc", "", "Cascade classifier (default: the backend's cascade file, looked up in the working directory, its cascade/ folder, then next to the binary)")
	version = flag.Bool("v", false, "Print the version and exit")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		return
	}

	newDetector, cc, err := detectorFor(*backend, *cascade)
	if err != nil {
		flag.Usage()
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	gui := facemark.NewGUI(newDetector, cc)
	go func() {
		w := new(app.Window)
		if err := gui.Run(w); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		os.Exit(0)
	}()
	app.Main()
}

// detectorFor returns the detector constructor and the cascade path of the selected backend.
func detectorFor(backend, cascade string) (facemark.NewDetectorFn, string, error) {
	switch backend {
	case "pigo":
		if cascade == "" {
			cascade = locateCascade(facemark.PigoCascade, searchDirs()...)
		}
		return facemark.NewPigoDetector, cascade, nil
	case "haar":
		if cascade == "" {
			cascade = locateCascade(facemark.HaarCascade, searchDirs()...)
		}
		return facemark.NewHaarDetector, cascade, nil
	}
	return nil, "", fmt.Errorf("unknown backend %q", backend)
}

// searchDirs returns the directories holding the default cascade files:
// the working directory and the directory of the executable.
func searchDirs() []string {
	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// locateCascade returns the first existing name or cascade/name found in dirs.
// When none exists the bare name is returned and the detector reports the missing file.
func locateCascade(name string, dirs ...string) string {
	for _, dir := range dirs {
		for _, path := range []string{filepath.Join(dir, name), filepath.Join(dir, "cascade", name)} {
			if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
				return path
			}
		}
	}
	return name
}
