package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// errDecode marks a failure to decode file content, as opposed to a filesystem failure.
var errDecode = errors.New("decoding content")

// Decoder names a text decoding attempted by Classify.
type Decoder struct {
	Name string
	New  func() transform.Transformer
}

// DefaultDecoders is the decoding order used by Classify: strict UTF-8, then
// Latin-1, which accepts every byte sequence.
//
//nolint:gochecknoglobals // Config constant
var DefaultDecoders = []Decoder{
	{Name: "utf-8", New: func() transform.Transformer { return encoding.UTF8Validator }},
	{Name: "latin-1", New: func() transform.Transformer { return charmap.ISO8859_1.NewDecoder() }},
}

// Classifier classifies candidate files using an ordered list of decoders.
type Classifier struct {
	decoders []Decoder
}

// NewClassifier creates a Classifier. With no decoders, DefaultDecoders is used.
func NewClassifier(decoders ...Decoder) Classifier {
	if len(decoders) == 0 {
		decoders = DefaultDecoders
	}

	return Classifier{decoders: decoders}
}

// Classify inspects the file at path with the default decoders.
func Classify(path string) Outcome {
	return NewClassifier().Classify(path)
}

// Classify inspects the file at path.
//
// Zero-byte files are Empty without their content being read. Otherwise the
// lines are counted with each decoder in turn; a decoding failure moves on to
// the next decoder while any filesystem failure makes the file Unreadable.
func (c Classifier) Classify(path string) Outcome {
	info, err := os.Stat(path)
	if err != nil {
		return UnreadableOutcome(path, fmt.Errorf("reading file info: %w", err))
	}

	if info.Size() == 0 {
		return EmptyOutcome(path)
	}

	var (
		lines   int64
		decoder string
	)

	for _, dec := range c.decoders {
		decoder = dec.Name

		lines, err = countFileLines(path, dec.New())
		if err == nil || !errors.Is(err, errDecode) {
			break
		}
	}

	if err != nil {
		return UnreadableOutcome(path, err)
	}

	return ValidOutcome(FileRecord{
		Path:     path,
		Name:     filepath.Base(path),
		Size:     info.Size(),
		Lines:    lines,
		Ext:      strings.ToLower(filepath.Ext(path)),
		Encoding: decoder,
	})
}

// countFileLines opens path and counts its lines through the given decoder.
// The file is closed on every return path.
func countFileLines(path string, decoder transform.Transformer) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	lines, err := CountLines(transform.NewReader(file, decoder))
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return 0, fmt.Errorf("reading file: %w", err)
		}

		return 0, fmt.Errorf("%w: %w", errDecode, err)
	}

	return lines, nil
}

// CountLines counts the lines in r. A line ends at "\n", "\r\n", or a lone
// "\r"; a trailing fragment without a terminator counts as a line.
func CountLines(r io.Reader) (int64, error) {
	reader := bufio.NewReader(r)

	var (
		lines   int64
		pending bool // bytes seen since the last terminator
		afterCR bool // previous byte was '\r'
	)

	for {
		b, err := reader.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, err
		}

		switch b {
		case '\n':
			if !afterCR {
				lines++
			}

			pending = false
			afterCR = false
		case '\r':
			lines++
			pending = false
			afterCR = true
		default:
			pending = true
			afterCR = false
		}
	}

	if pending {
		lines++
	}

	return lines, nil
}
