// Package artext prepares Arabic text for fixed-layout renderers that
// only know left-to-right placement, such as the PDF exporter.
package artext

import (
	"strings"

	"github.com/01walid/goarabic"
	"golang.org/x/text/unicode/bidi"
)

// Shape returns the text with Arabic letters joined into their contextual
// forms and all characters reordered into visual order.
//
// Shape is a pure function and never fails: empty input and input that
// cannot be shaped are returned unchanged, so callers do not need an
// error path for arbitrary printable text. Text without right-to-left
// characters comes back identical.
func Shape(text string) (shaped string) {
	if text == "" {
		return text
	}

	// Shaping data for unusual input may be incomplete, fall back to
	// the original text instead of failing the export
	defer func() {
		if recover() != nil {
			shaped = text
		}
	}()

	visual, err := reorder(goarabic.ToGlyph(text))
	if err != nil {
		return text
	}

	return visual
}

// reorder converts logical order to visual order: runs are emitted in
// visual sequence and the characters of right-to-left runs are reversed.
func reorder(text string) (string, error) {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return "", err
	}

	ordering, err := p.Order()
	if err != nil {
		return "", err
	}

	runs := make([]string, 0, ordering.NumRuns())
	rightToLeft := false
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)

		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = reverse(text)

			if i == 0 {
				rightToLeft = true
			}
		}

		runs = append(runs, text)
	}

	// For a right-to-left paragraph the runs themselves are laid out
	// from right to left as well
	if p.Direction() == bidi.RightToLeft || rightToLeft {
		for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}

	return strings.Join(runs, ""), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
