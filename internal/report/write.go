package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/idelchi/intake/internal/intake"
)

// Write renders the report for stats into the file at path, replacing any
// existing content.
func Write(path string, stats intake.Stats, meta Meta) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report: %w", cerr)
		}
	}()

	buf := bufio.NewWriter(file)

	if err := Render(buf, stats, meta); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
