package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/intake/internal/intake"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *intake.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the per-extension statistics as a console table.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(stats *intake.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nBy extension:\t\t\t")

	for _, ext := range stats.Extensions() {
		extStat := stats.ExtStats[ext]
		pct := 0.0
		if stats.TotalBytes > 0 {
			pct = 100.0 * float64(extStat.Size) / float64(stats.TotalBytes)
		}
		fmt.Fprintf(w, "  %s:\t%d files,\t%s lines,\t%s (%.1f%%)\n",
			ext, extStat.Count, humanize.Comma(extStat.Lines),
			humanize.IBytes(uint64(extStat.Size)), pct) //nolint:gosec // Sizes are never negative
	}

	fmt.Fprintf(w, "Total:\t%d files,\t%s lines,\t%s\n",
		stats.FileCount, humanize.Comma(stats.TotalLines),
		humanize.IBytes(uint64(stats.TotalBytes))) //nolint:gosec // Sizes are never negative

	if stats.HasWarnings() {
		fmt.Fprintf(w, "Skipped:\t%d empty,\t%d unreadable\t\n", len(stats.Empty), len(stats.Unreadable))
	}

	return w.Flush()
}
