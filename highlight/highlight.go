// Package highlight colours hex dump cells by byte category.
package highlight

import (
	"github.com/fatih/color"

	"github.com/bjaus/hexer"
)

// Category classifies a byte for colouring.
type Category int

const (
	Null Category = iota
	Printable
	Whitespace
	Control
	NonASCII
)

// Classify returns the category of b.
func Classify(b byte) Category {
	switch {
	case b == 0:
		return Null
	case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
		return Whitespace
	case b > 0x20 && b < 0x7f:
		return Printable
	case b < 0x80:
		return Control
	default:
		return NonASCII
	}
}

// Palette maps every category to a colour. A nil entry leaves the cell as is.
type Palette map[Category]*color.Color

// DefaultPalette dims null bytes and colours the rest by category.
func DefaultPalette() Palette {
	return Palette{
		Null:       color.New(color.Faint),
		Printable:  color.New(color.FgCyan),
		Whitespace: color.New(color.FgGreen),
		Control:    color.New(color.FgMagenta),
		NonASCII:   color.New(color.FgYellow),
	}
}

// Styler returns a [hexer.Styler] that paints cells with p. The colours
// obey color.NoColor, so output to a non-terminal stays plain unless
// colouring is forced.
func (p Palette) Styler() hexer.Styler {
	return func(b byte, cell string) string {
		c := p[Classify(b)]
		if c == nil {
			return cell
		}
		return c.Sprint(cell)
	}
}

// Force turns colouring on or off for every colour of p, regardless of
// color.NoColor.
func (p Palette) Force(on bool) {
	for _, c := range p {
		if c == nil {
			continue
		}
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}
