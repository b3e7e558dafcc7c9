package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/idelchi/intake/internal/intake"
)

const (
	// Width is the width of the banner and section rules.
	Width = 80
	// Title is the report heading.
	Title = "AUTOMATION SYSTEM - SUMMARY REPORT"
	// TimeLayout formats the generation timestamp.
	TimeLayout = "2006-01-02 15:04:05"
)

// Meta carries the report fields that do not come from the statistics.
type Meta struct {
	// GeneratedAt is the report generation time.
	GeneratedAt time.Time
	// InputFolder is the absolute path of the scanned folder.
	InputFolder string
}

// reportWriter writes formatted lines and keeps the first write error.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}

	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) banner(title string) {
	rule := strings.Repeat("=", Width)
	rw.printf("%s\n%s\n%s\n", rule, title, rule)
}

func (rw *reportWriter) section(title string) {
	rule := strings.Repeat("-", Width)
	rw.printf("%s\n%s\n%s\n", rule, title, rule)
}

// Render writes the summary report for stats to w.
//
// The per-extension section is omitted when there are no extension
// statistics, and the warnings section when no file was empty or unreadable.
// Extensions and file details are listed in lexical order so the output does
// not depend on scan order.
func Render(w io.Writer, stats intake.Stats, meta Meta) error {
	rw := &reportWriter{w: w}

	rw.banner(Title)
	rw.printf("\n")

	rw.printf("Generated: %s\n", meta.GeneratedAt.Format(TimeLayout))
	rw.printf("Input Folder: %s\n\n", meta.InputFolder)

	rw.section("OVERALL STATISTICS")
	rw.printf("Total Valid Files: %d\n", stats.FileCount)
	rw.printf("Total Size: %s\n", FormatSize(stats.TotalBytes))
	rw.printf("Total Lines: %s\n\n", FormatCount(stats.TotalLines))

	if len(stats.ExtStats) > 0 {
		rw.section("STATISTICS BY FILE TYPE")

		for _, ext := range stats.Extensions() {
			extStat := stats.ExtStats[ext]
			rw.printf("\n%s Files:\n", strings.ToUpper(ext))
			rw.printf("  Count: %d\n", extStat.Count)
			rw.printf("  Total Size: %s\n", FormatSize(extStat.Size))
			rw.printf("  Total Lines: %s\n", FormatCount(extStat.Lines))
		}
	}

	rw.printf("\n")
	rw.section("FILE DETAILS")

	for _, rec := range stats.SortedValid() {
		rw.printf("\n%s\n", rec.Name)
		rw.printf("  Size: %s\n", FormatSize(rec.Size))
		rw.printf("  Lines: %s\n", FormatCount(rec.Lines))
		rw.printf("  Type: %s\n", rec.Ext)
	}

	if stats.HasWarnings() {
		rw.printf("\n")
		rw.section("WARNINGS")

		if len(stats.Empty) > 0 {
			rw.printf("\nEmpty Files (%d):\n", len(stats.Empty))

			for _, path := range stats.Empty {
				rw.printf("  - %s\n", baseName(path))
			}
		}

		if len(stats.Unreadable) > 0 {
			rw.printf("\nUnreadable Files (%d):\n", len(stats.Unreadable))

			for _, path := range stats.Unreadable {
				rw.printf("  - %s\n", baseName(path))
			}
		}
	}

	rw.printf("\n")
	rw.banner("END OF REPORT")

	return rw.err
}

// baseName returns the last element of path.
func baseName(path string) string {
	return filepath.Base(path)
}

// String renders the report into a string.
func String(stats intake.Stats, meta Meta) string {
	var sb strings.Builder

	_ = Render(&sb, stats, meta) // strings.Builder never fails

	return sb.String()
}
