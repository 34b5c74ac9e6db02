package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/uryuwr/cardgrab/internal/model"
)

// codeColumnWidth is the display width of the set-code column.
const codeColumnWidth = 10

// WriteSetTable renders the set catalog as an aligned two-column table:
// the bracket code extracted from each set name, then the full display
// name. Sets without a bracketed code show "-" so the operator still sees
// them. The name column is CJK text, hence the display-width padding.
func WriteSetTable(output io.Writer, sets []model.Set) error {
	rule := strings.Repeat("=", 60)

	if _, err := fmt.Fprintf(output, "%s\n%s  %s\n%s\n",
		rule, PadDisplayLeft("CODE", codeColumnWidth), "NAME", rule); err != nil {
		return err
	}

	for _, s := range sets {
		code := s.BracketCode()
		if code == "" {
			code = "-"
		}
		if _, err := fmt.Fprintf(output, "%s  %s\n",
			PadDisplayLeft(code, codeColumnWidth), s.Name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "%s\n%d set(s)\n", rule, len(sets))
	return err
}
