package hexer

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CharFormat is the built-in [CharFormatter]. Printable ASCII passes
// through and every other byte is replaced by the placeholder.
//
// Every cell is as wide as the placeholder's display width, so a wide
// placeholder such as an emoji keeps the column aligned.
type CharFormat struct {
	placeholder string
	cellWidth   int
	seps        Separators
	styler      Styler
}

// NewCharFormat returns a char formatter. An empty placeholder means ".".
func NewCharFormat(placeholder string, seps Separators) *CharFormat {
	if placeholder == "" {
		placeholder = "."
	}
	return &CharFormat{
		placeholder: placeholder,
		cellWidth:   max(runewidth.StringWidth(placeholder), 1),
		seps:        seps,
	}
}

// DefaultCharFormat uses "." as placeholder and pipes as separators.
func DefaultCharFormat() *CharFormat {
	return NewCharFormat(".", NewSeparators("|", "|"))
}

// WithStyler returns a copy of f that decorates every char cell with s.
func (f *CharFormat) WithStyler(s Styler) *CharFormat {
	c := *f
	c.styler = s
	return &c
}

// CellWidth returns the display width of a single char cell.
func (f *CharFormat) CellWidth() int { return f.cellWidth }

// Separators implements [CharFormatter].
func (f *CharFormat) Separators() Separators { return f.seps }

// FormatChars implements [CharFormatter].
func (f *CharFormat) FormatChars(w io.Writer, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.Grow(len(b) * len(f.placeholder))
	for _, c := range b {
		cell := f.placeholder
		if isPrintable(c) {
			cell = string(rune(c))
			if f.cellWidth > 1 {
				cell = runewidth.FillRight(cell, f.cellWidth)
			}
		}
		if f.styler != nil {
			cell = f.styler(c, cell)
		}
		sb.WriteString(cell)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatPadding implements [CharFormatter].
func (f *CharFormat) FormatPadding(w io.Writer, count int) error {
	if count <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(" ", count*f.cellWidth))
	return err
}
