package intake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"empty", "", 0},
		{"single unterminated", "abc", 1},
		{"single terminated", "abc\n", 1},
		{"trailing fragment", "a\nb", 2},
		{"blank lines", "\n\n\n", 3},
		{"crlf", "a\r\nb\r\n", 2},
		{"lone cr", "a\rb\rc", 3},
		{"mixed", "a\r\nb\nc\rd", 4},
		{"cr at end", "a\r", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountLines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()

	writeFiles(t, dir, map[string]string{
		"a.txt":  "one\ntwo\nthree\n",
		"b.csv":  "",
		"c.JSON": "{\n\"k\": 1\n}",
		// 0xE9 is 'é' in Latin-1 and an invalid UTF-8 sequence on its own.
		"latin.txt": "caf\xe9\nna\xefve\n",
	})

	t.Run("valid utf-8", func(t *testing.T) {
		got := Classify(filepath.Join(dir, "a.txt"))
		require.Equal(t, Valid, got.Kind)
		assert.Equal(t, FileRecord{
			Path:     filepath.Join(dir, "a.txt"),
			Name:     "a.txt",
			Size:     int64(len("one\ntwo\nthree\n")),
			Lines:    3,
			Ext:      ".txt",
			Encoding: "utf-8",
		}, got.Record)
		assert.NoError(t, got.Err)
	})

	t.Run("zero bytes is empty", func(t *testing.T) {
		got := Classify(filepath.Join(dir, "b.csv"))
		assert.Equal(t, Empty, got.Kind)
		assert.Equal(t, filepath.Join(dir, "b.csv"), got.Path)
		assert.Zero(t, got.Record)
	})

	t.Run("extension is lowercased", func(t *testing.T) {
		got := Classify(filepath.Join(dir, "c.JSON"))
		require.Equal(t, Valid, got.Kind)
		assert.Equal(t, ".json", got.Record.Ext)
		assert.Equal(t, int64(3), got.Record.Lines)
	})

	t.Run("latin-1 falls back", func(t *testing.T) {
		got := Classify(filepath.Join(dir, "latin.txt"))
		require.Equal(t, Valid, got.Kind)
		assert.Equal(t, int64(2), got.Record.Lines)
		assert.Equal(t, "latin-1", got.Record.Encoding)
	})

	t.Run("missing file is unreadable", func(t *testing.T) {
		got := Classify(filepath.Join(dir, "missing.txt"))
		assert.Equal(t, Unreadable, got.Kind)
		assert.ErrorIs(t, got.Err, os.ErrNotExist)
	})
}

func TestClassify_NoFallbackLeft(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"latin.txt": "caf\xe9\n"})

	strict := NewClassifier(Decoder{
		Name: "utf-8",
		New:  func() transform.Transformer { return encoding.UTF8Validator },
	})

	got := strict.Classify(filepath.Join(dir, "latin.txt"))
	assert.Equal(t, Unreadable, got.Kind)
	assert.ErrorIs(t, got.Err, errDecode)
	assert.ErrorIs(t, got.Err, encoding.ErrInvalidUTF8)
}

func TestClassify_PermissionDenied(t *testing.T) {
	skipIfRoot(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "secret.txt")
	writeFiles(t, dir, map[string]string{"secret.txt": "hidden\n"})
	require.NoError(t, os.Chmod(path, 0o000))

	got := Classify(path)
	assert.Equal(t, Unreadable, got.Kind)
	assert.NotErrorIs(t, got.Err, errDecode)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "unreadable", Unreadable.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
