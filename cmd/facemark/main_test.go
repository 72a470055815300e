package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/facemark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorFor(t *testing.T) {
	testCases := []struct {
		backend string
		cascade string
		want    string
	}{
		{backend: "pigo", want: facemark.PigoCascade},
		{backend: "haar", want: facemark.HaarCascade},
		{backend: "pigo", cascade: "models/custom", want: "models/custom"},
	}

	for _, tc := range testCases {
		t.Run(tc.backend+"/"+tc.want, func(t *testing.T) {
			fn, cc, err := detectorFor(tc.backend, tc.cascade)
			require.NoError(t, err)
			assert.NotNil(t, fn)
			assert.Equal(t, tc.want, cc)
		})
	}

	_, _, err := detectorFor("yolo", "")
	assert.Error(t, err)
}

func TestLocateCascade(t *testing.T) {
	workDir, exeDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(exeDir, "cascade"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(exeDir, "cascade", facemark.PigoCascade), []byte("pigo"), 0644))

	assert.Equal(t, filepath.Join(exeDir, "cascade", facemark.PigoCascade), locateCascade(facemark.PigoCascade, workDir, exeDir))

	// The working directory takes precedence.
	require.NoError(t, os.WriteFile(filepath.Join(workDir, facemark.PigoCascade), []byte("pigo"), 0644))
	assert.Equal(t, filepath.Join(workDir, facemark.PigoCascade), locateCascade(facemark.PigoCascade, workDir, exeDir))

	assert.Equal(t, facemark.HaarCascade, locateCascade(facemark.HaarCascade, workDir, exeDir))
}
