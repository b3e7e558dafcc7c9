package intake

import (
	"cmp"
	"maps"
	"slices"
)

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Count is the number of valid files with this extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
	// Lines is the cumulative line count.
	Lines int64 `json:"lines"`
}

// FileRecord describes one successfully classified file.
type FileRecord struct {
	// Path is the file path as it was scanned.
	Path string `json:"path"`
	// Name is the base name of Path.
	Name string `json:"name"`
	// Size is the size in bytes, always greater than zero.
	Size int64 `json:"size"`
	// Lines is the number of text lines in the file.
	Lines int64 `json:"lines"`
	// Ext is the lowercased extension, including the leading dot.
	Ext string `json:"ext"`
	// Encoding names the decoder that read the content.
	Encoding string `json:"encoding"`
}

// Stats holds aggregate statistics for a folder scan.
type Stats struct {
	// FileCount is the number of valid files.
	FileCount int `json:"file_count"`
	// TotalBytes is the cumulative size of all valid files.
	TotalBytes int64 `json:"total_bytes"`
	// TotalLines is the cumulative line count of all valid files.
	TotalLines int64 `json:"total_lines"`
	// ExtStats maps lowercased extensions to their statistics.
	ExtStats map[string]ExtStat `json:"ext_stats"`
	// Valid holds the valid files in scan order.
	Valid []FileRecord `json:"valid"`
	// Empty holds the paths of zero-byte candidates in scan order.
	Empty []string `json:"empty"`
	// Unreadable holds the paths of candidates that could not be read or decoded.
	Unreadable []string `json:"unreadable"`
}

// NewStats returns an empty aggregate ready to be folded into.
func NewStats() Stats {
	return Stats{ExtStats: make(map[string]ExtStat)}
}

// Fold returns a new aggregate with outcome applied to stats.
// The input aggregate is left untouched.
func Fold(stats Stats, outcome Outcome) Stats {
	next := stats

	switch outcome.Kind {
	case Valid:
		rec := outcome.Record

		next.Valid = append(slices.Clip(stats.Valid), rec)
		next.FileCount++
		next.TotalBytes += rec.Size
		next.TotalLines += rec.Lines

		next.ExtStats = maps.Clone(stats.ExtStats)
		if next.ExtStats == nil {
			next.ExtStats = make(map[string]ExtStat)
		}

		stat := next.ExtStats[rec.Ext]
		stat.Count++
		stat.Size += rec.Size
		stat.Lines += rec.Lines
		next.ExtStats[rec.Ext] = stat
	case Empty:
		next.Empty = append(slices.Clip(stats.Empty), outcome.Path)
	case Unreadable:
		next.Unreadable = append(slices.Clip(stats.Unreadable), outcome.Path)
	}

	return next
}

// Extensions returns the keys of ExtStats in lexical order.
func (s Stats) Extensions() []string {
	return slices.Sorted(maps.Keys(s.ExtStats))
}

// SortedValid returns a copy of the valid files ordered by name, then path.
func (s Stats) SortedValid() []FileRecord {
	files := slices.Clone(s.Valid)

	slices.SortStableFunc(files, func(a, b FileRecord) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Path, b.Path))
	})

	return files
}

// HasWarnings reports whether any candidate was empty or unreadable.
func (s Stats) HasWarnings() bool {
	return len(s.Empty) > 0 || len(s.Unreadable) > 0
}
