package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// SupportedExtensions is the fixed allow-list of candidate suffixes, matched case-insensitively.
//
//nolint:gochecknoglobals // Config constant
var SupportedExtensions = []string{".txt", ".csv", ".json"}

// Options configures a folder scan.
type Options struct {
	// Path is the folder to scan.
	Path string
	// Classifier classifies each candidate; the zero value uses DefaultDecoders.
	Classifier Classifier
	// OnOutcome, if set, is called after each candidate is classified.
	OnOutcome func(Outcome)
}

// Listing is the result of enumerating a folder.
type Listing struct {
	// Files holds every regular file directly inside the folder, sorted.
	Files []string
	// Candidates holds the subset of Files with a supported extension.
	Candidates []string
}

// ValidateFolder checks that path exists, is a directory, and can be read.
func ValidateFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ScanError{Kind: ErrInvalidFolder, Reason: "Input folder does not exist: " + path}
		}

		return &ScanError{Kind: ErrInvalidFolder, Reason: "Cannot access input folder: " + path, Err: err}
	}

	if !info.IsDir() {
		return &ScanError{Kind: ErrInvalidFolder, Reason: "Path is not a directory: " + path}
	}

	dir, err := os.Open(path)
	if err != nil {
		return &ScanError{Kind: ErrInvalidFolder, Reason: "No read permission for folder: " + path, Err: err}
	}
	defer dir.Close()

	if _, err := dir.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return &ScanError{Kind: ErrInvalidFolder, Reason: "No read permission for folder: " + path, Err: err}
	}

	return nil
}

// shouldIncludeByExtension reports whether path has one of the given extensions,
// ignoring case.
func shouldIncludeByExtension(path string, include map[string]struct{}) bool {
	_, ok := include[strings.ToLower(filepath.Ext(path))]

	return ok
}

// List enumerates the regular files directly inside opt.Path without descending
// into sub-directories. Symlinks are included when they resolve to regular files.
func List(ctx context.Context, opt Options) (Listing, error) {
	include := extensionSet()

	var (
		mu    sync.Mutex
		files []string
	)

	conf := &fastwalk.Config{
		Follow:     false,
		MaxDepth:   1,
		NumWorkers: 1,
	}

	root := filepath.Clean(opt.Path)

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if filepath.Clean(path) == root {
				return err
			}

			return nil // Skip entries that vanished or cannot be inspected
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			info, err := fastwalk.StatDirEntry(path, d)
			if err != nil || !info.Mode().IsRegular() {
				return nil //nolint:nilerr // Broken links and special files are not files
			}
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()

		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return Listing{}, walkErr
		}

		return Listing{}, &ScanError{
			Kind:   ErrReadFailed,
			Reason: "Cannot read input folder: " + opt.Path,
			Err:    walkErr,
		}
	}

	slices.Sort(files)

	listing := Listing{Files: files}

	for _, file := range files {
		if shouldIncludeByExtension(file, include) {
			listing.Candidates = append(listing.Candidates, file)
		}
	}

	return listing, nil
}

// Run validates opt.Path, classifies every candidate file, and returns the
// aggregated statistics.
//
// A file that is empty or unreadable never stops the scan. The returned error
// is a *ScanError when the folder is invalid, holds no files, holds no
// supported files, or holds no valid files; ctx cancellation is returned as is.
func Run(ctx context.Context, opt Options) (*Stats, error) {
	if err := ValidateFolder(opt.Path); err != nil {
		return nil, err
	}

	listing, err := List(ctx, opt)
	if err != nil {
		return nil, err
	}

	return Scan(ctx, opt, listing)
}

// Scan classifies the candidates of an existing listing and folds the outcomes.
func Scan(ctx context.Context, opt Options, listing Listing) (*Stats, error) {
	if len(listing.Files) == 0 {
		return nil, &ScanError{Kind: ErrEmptyFolder, Reason: "Input folder is empty - no files found"}
	}

	if len(listing.Candidates) == 0 {
		return nil, &ScanError{
			Kind: ErrNoSupportedFiles,
			Reason: fmt.Sprintf("No valid files found. Supported extensions: %s",
				strings.Join(SupportedExtensions, ", ")),
		}
	}

	classifier := opt.Classifier

	if classifier.decoders == nil {
		classifier = NewClassifier()
	}

	stats := NewStats()

	for _, path := range listing.Candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome := classifier.Classify(path)
		if opt.OnOutcome != nil {
			opt.OnOutcome(outcome)
		}

		stats = Fold(stats, outcome)
	}

	if len(stats.Valid) == 0 {
		return nil, &ScanError{
			Kind:   ErrAllFilesInvalid,
			Reason: "No valid files found (all files are empty or unreadable)",
			Stats:  &stats,
		}
	}

	return &stats, nil
}

// extensionSet returns SupportedExtensions as a set for quick lookup.
func extensionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(SupportedExtensions))
	for _, ext := range SupportedExtensions {
		set[ext] = struct{}{}
	}

	return set
}
