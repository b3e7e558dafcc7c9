package intake

// Kind tags the variant of an Outcome.
type Kind int

const (
	// Valid marks a non-empty file whose text content could be decoded.
	Valid Kind = iota
	// Empty marks a zero-byte file.
	Empty
	// Unreadable marks a file that could not be opened, read, or decoded.
	Unreadable
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case Empty:
		return "empty"
	case Unreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Outcome is the classification of a single candidate file.
// Record is only meaningful for Valid; Err is only set for Unreadable.
type Outcome struct {
	Kind   Kind
	Path   string
	Record FileRecord
	Err    error
}

// ValidOutcome wraps a classified record.
func ValidOutcome(rec FileRecord) Outcome {
	return Outcome{Kind: Valid, Path: rec.Path, Record: rec}
}

// EmptyOutcome marks path as a zero-byte file.
func EmptyOutcome(path string) Outcome {
	return Outcome{Kind: Empty, Path: path}
}

// UnreadableOutcome marks path as unreadable, keeping the cause for diagnostics.
func UnreadableOutcome(path string, err error) Outcome {
	return Outcome{Kind: Unreadable, Path: path, Err: err}
}
