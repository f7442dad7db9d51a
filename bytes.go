package hexer

import (
	"io"
)

// DefaultPadding is the glyph repeated across the width of a missing byte.
const DefaultPadding = '.'

// ByteFormat is the built-in [ByteFormatter].
type ByteFormat struct {
	style        ByteStyle
	grouping     Grouping
	byteSep      string
	littleEndian bool
	seps         Separators
	padding      byte
	styler       Styler
}

// NewByteFormat returns a byte formatter. byteSep is printed between bytes
// of the same group. With littleEndian set every group is printed in
// reverse, which requires whole groups and makes the formatter [Strict].
func NewByteFormat(style ByteStyle, grouping Grouping, byteSep string, littleEndian bool, seps Separators) *ByteFormat {
	return &ByteFormat{
		style:        style,
		grouping:     grouping.orDefault(),
		byteSep:      byteSep,
		littleEndian: littleEndian,
		seps:         seps,
		padding:      DefaultPadding,
	}
}

// DefaultByteFormat prints four big-endian groups of four hex bytes.
func DefaultByteFormat() *ByteFormat {
	return NewByteFormat(Hex, DefaultGrouping(), "", false, NewSeparators("", " "))
}

// WithStyler returns a copy of f that decorates every byte cell with s.
func (f *ByteFormat) WithStyler(s Styler) *ByteFormat {
	c := *f
	c.styler = s
	return &c
}

// WithPadding returns a copy of f that pads missing bytes with glyph.
func (f *ByteFormat) WithPadding(glyph byte) *ByteFormat {
	c := *f
	c.padding = glyph
	return &c
}

// Style returns the numeral style.
func (f *ByteFormat) Style() ByteStyle { return f.style }

// ByteOrder implements [ByteFormatter].
func (f *ByteFormat) ByteOrder() ByteOrder {
	if f.littleEndian {
		return Strict
	}
	return Relaxed
}

// Grouping implements [ByteFormatter].
func (f *ByteFormat) Grouping() Grouping { return f.grouping }

// Separators implements [ByteFormatter].
func (f *ByteFormat) Separators() Separators { return f.seps }

// FormatBytes implements [ByteFormatter].
func (f *ByteFormat) FormatBytes(w io.Writer, b []byte, at int) error {
	gr := f.grouping
	if f.littleEndian && !gr.IsAlignedAt(at) {
		panic("hexer: little-endian bytes must start at a group boundary")
	}
	buf := make([]byte, 0, len(b)*(f.style.Width()+len(f.byteSep))+len(gr.Separator()))
	var cell []byte
	for len(b) > 0 {
		left := gr.BytesLeftInGroupAfter(at)
		n := min(len(b), left)
		if at != 0 && gr.IsAlignedAt(at) {
			buf = append(buf, gr.Separator()...)
		}
		num := gr.MaxGroupSize() - left
		for i := range n {
			c := b[i]
			if f.littleEndian {
				c = b[n-1-i]
			}
			if num != 0 {
				buf = append(buf, f.byteSep...)
			}
			cell = f.style.AppendByte(cell[:0], c)
			if f.styler != nil {
				buf = append(buf, f.styler(c, string(cell))...)
			} else {
				buf = append(buf, cell...)
			}
			num++
		}
		at += n
		b = b[n:]
	}
	if len(buf) == 0 {
		return nil
	}
	_, err := w.Write(buf)
	return err
}

// FormatPadding implements [ByteFormatter].
func (f *ByteFormat) FormatPadding(w io.Writer, at int) error {
	gr := f.grouping
	cell := make([]byte, f.style.Width())
	for i := range cell {
		cell[i] = f.padding
	}
	var buf []byte
	for rem := gr.BytesPerRow() - at; rem > 0; {
		left := gr.BytesLeftInGroupAfter(at)
		n := min(rem, left)
		if at != 0 && gr.IsAlignedAt(at) {
			buf = append(buf, gr.Separator()...)
		}
		num := gr.MaxGroupSize() - left
		for range n {
			if num != 0 {
				buf = append(buf, f.byteSep...)
			}
			buf = append(buf, cell...)
			num++
		}
		at += n
		rem -= n
	}
	if len(buf) == 0 {
		return nil
	}
	_, err := w.Write(buf)
	return err
}
