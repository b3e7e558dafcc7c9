package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/intake/internal/intake"
)

var fixedMeta = Meta{
	GeneratedAt: time.Date(2026, 1, 12, 9, 30, 5, 0, time.UTC),
	InputFolder: "/data/example_input",
}

func fold(outcomes ...intake.Outcome) intake.Stats {
	stats := intake.NewStats()
	for _, o := range outcomes {
		stats = intake.Fold(stats, o)
	}

	return stats
}

func valid(name string, size, lines int64) intake.Outcome {
	return intake.ValidOutcome(intake.FileRecord{
		Path:  "/data/example_input/" + name,
		Name:  name,
		Size:  size,
		Lines: lines,
		Ext:   strings.ToLower(filepath.Ext(name)),
	})
}

const scenarioReport = `================================================================================
AUTOMATION SYSTEM - SUMMARY REPORT
================================================================================

Generated: 2026-01-12 09:30:05
Input Folder: /data/example_input

--------------------------------------------------------------------------------
OVERALL STATISTICS
--------------------------------------------------------------------------------
Total Valid Files: 2
Total Size: 80.00 B
Total Lines: 8

--------------------------------------------------------------------------------
STATISTICS BY FILE TYPE
--------------------------------------------------------------------------------

.JSON Files:
  Count: 1
  Total Size: 50.00 B
  Total Lines: 5

.TXT Files:
  Count: 1
  Total Size: 30.00 B
  Total Lines: 3

--------------------------------------------------------------------------------
FILE DETAILS
--------------------------------------------------------------------------------

a.txt
  Size: 30.00 B
  Lines: 3
  Type: .txt

c.json
  Size: 50.00 B
  Lines: 5
  Type: .json

--------------------------------------------------------------------------------
WARNINGS
--------------------------------------------------------------------------------

Empty Files (1):
  - b.csv

================================================================================
END OF REPORT
================================================================================
`

func TestRender_Scenario(t *testing.T) {
	stats := fold(
		valid("c.json", 50, 5),
		intake.EmptyOutcome("/data/example_input/b.csv"),
		valid("a.txt", 30, 3),
	)

	assert.Equal(t, scenarioReport, String(stats, fixedMeta))
}

func TestRender_ScanOrderDoesNotMatter(t *testing.T) {
	outcomes := []intake.Outcome{
		valid("b.csv", 4096, 1200),
		valid("a.txt", 10, 1),
		valid("c.json", 1536, 40),
		intake.UnreadableOutcome("/data/example_input/x.txt", nil),
	}

	forward := fold(outcomes...)
	backward := fold(outcomes[3], outcomes[2], outcomes[1], outcomes[0])

	assert.Equal(t, String(forward, fixedMeta), String(backward, fixedMeta))
}

func TestRender_OptionalSections(t *testing.T) {
	t.Run("no warnings", func(t *testing.T) {
		out := String(fold(valid("a.txt", 2048, 1234)), fixedMeta)

		assert.NotContains(t, out, "WARNINGS")
		assert.Contains(t, out, "STATISTICS BY FILE TYPE")
		assert.Contains(t, out, "Total Size: 2.00 KB")
		assert.Contains(t, out, "Total Lines: 1,234")
		assert.Contains(t, out, "  Lines: 1,234\n")
	})

	t.Run("nothing valid", func(t *testing.T) {
		out := String(fold(intake.UnreadableOutcome("/in/bad.txt", nil)), fixedMeta)

		assert.NotContains(t, out, "STATISTICS BY FILE TYPE")
		assert.Contains(t, out, "FILE DETAILS")
		assert.Contains(t, out, "Unreadable Files (1):\n  - bad.txt\n")
		assert.NotContains(t, out, "Empty Files")
	})

	t.Run("empty aggregate", func(t *testing.T) {
		out := String(intake.NewStats(), fixedMeta)

		assert.Contains(t, out, "Total Valid Files: 0")
		assert.Contains(t, out, "Total Size: 0.00 B")
		assert.True(t, strings.HasSuffix(out, "END OF REPORT\n"+strings.Repeat("=", Width)+"\n"))
	})

	t.Run("empty before unreadable", func(t *testing.T) {
		out := String(fold(
			intake.UnreadableOutcome("/in/u.txt", nil),
			intake.EmptyOutcome("/in/e.txt"),
			valid("a.txt", 1, 1),
		), fixedMeta)

		assert.Less(t, strings.Index(out, "Empty Files (1)"), strings.Index(out, "Unreadable Files (1)"))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, fold(valid("a.txt", 1, 1)), fixedMeta)
	assert.EqualError(t, err, "disk full")
}

func TestWrite(t *testing.T) {
	stats := fold(
		valid("c.json", 50, 5),
		intake.EmptyOutcome("/data/example_input/b.csv"),
		valid("a.txt", 30, 3),
	)

	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o644))

	require.NoError(t, Write(path, stats, fixedMeta))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scenarioReport, string(data))
}

func TestWrite_MissingFolder(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "summary.txt"), intake.NewStats(), fixedMeta)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "creating report")
}
