// Package output names and creates the timestamped folder a run writes into.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimeLayout is the timestamp part of an output folder name.
const TimeLayout = "20060102_150405"

// Dir is the output folder of one run.
type Dir struct {
	// Path is the absolute folder path.
	Path string
	// Reused is true when the folder already existed, e.g. for a second run
	// within the same second.
	Reused bool
}

// Name returns the folder name for a run started at ts.
func Name(prefix string, ts time.Time) string {
	return prefix + ts.Format(TimeLayout)
}

// PathFor returns the output folder path for inputDir: a sibling of the input
// folder named by Name.
func PathFor(inputDir, prefix string, ts time.Time) (string, error) {
	abs, err := filepath.Abs(inputDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	return filepath.Join(filepath.Dir(abs), Name(prefix, ts)), nil
}

// Create makes the output folder for inputDir if it does not exist yet.
// An existing folder is reused and its files are overwritten by the run.
func Create(inputDir, prefix string, ts time.Time) (Dir, error) {
	path, err := PathFor(inputDir, prefix, ts)
	if err != nil {
		return Dir{}, err
	}

	err = os.Mkdir(path, 0o755) //nolint:gosec // Output folder is meant to be shared
	switch {
	case err == nil:
		return Dir{Path: path}, nil
	case os.IsExist(err):
		info, statErr := os.Stat(path)
		if statErr != nil {
			return Dir{}, fmt.Errorf("accessing output folder %q: %w", path, statErr)
		}

		if !info.IsDir() {
			return Dir{}, fmt.Errorf("output path %q exists and is not a directory", path)
		}

		return Dir{Path: path, Reused: true}, nil
	default:
		return Dir{}, fmt.Errorf("creating output folder %q: %w", path, err)
	}
}

// File returns the path of name inside the output folder.
func (d Dir) File(name string) string {
	return filepath.Join(d.Path, name)
}
