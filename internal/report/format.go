// Package report renders run statistics as the plain-text summary report.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// sizeUnits are the units FormatSize steps through, each 1024 times the previous.
//
//nolint:gochecknoglobals // Config constant
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize returns bytes as a human-readable size with two decimals,
// using the first unit in which the value drops below 1024 and TB as the ceiling.
func FormatSize(bytes int64) string {
	value := float64(bytes)

	for _, unit := range sizeUnits[:len(sizeUnits)-1] {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}

		value /= 1024
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[len(sizeUnits)-1])
}

// FormatCount returns n with thousands separators (e.g. 1,234,567).
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
