package hexer

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrClosed           = errors.New("printer closed")
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrInvalidGrouping  = errors.New("invalid grouping")
)

// ByteOrder tells the engine how a [ByteFormatter] wants its bytes.
type ByteOrder int

const (
	// Relaxed formatters accept any part of a row as soon as it arrives.
	Relaxed ByteOrder = iota
	// Strict formatters receive whole groups only. The engine buffers
	// until a group is complete, or until the stream ends.
	Strict
)

// String returns the order name.
func (o ByteOrder) String() string {
	if o == Strict {
		return "strict"
	}
	return "relaxed"
}

// Separators decorate a column on both sides.
type Separators struct {
	Leading  string
	Trailing string
}

// NewSeparators is shorthand for Separators{leading, trailing}.
func NewSeparators(leading, trailing string) Separators {
	return Separators{Leading: leading, Trailing: trailing}
}

// Styler wraps the text of a single byte cell. It runs after the cell is
// rendered, so escape codes added here never affect column arithmetic.
type Styler func(b byte, cell string) string

// --- Formatter capabilities ---

// AddressFormatter renders the address column.
type AddressFormatter interface {
	FormatAddress(w io.Writer, addr uint64) error
	Separators() Separators
}

// ByteFormatter renders the byte column.
//
// FormatBytes receives bytes starting at offset at within the row and is
// responsible for the separators between groups. FormatPadding fills the
// rest of a short final row starting at offset at.
type ByteFormatter interface {
	ByteOrder() ByteOrder
	Grouping() Grouping
	FormatBytes(w io.Writer, b []byte, at int) error
	FormatPadding(w io.Writer, at int) error
	Separators() Separators
}

// CharFormatter renders the optional character column.
type CharFormatter interface {
	FormatChars(w io.Writer, b []byte) error
	FormatPadding(w io.Writer, count int) error
	Separators() Separators
}

// --- Configuration ---

// Config selects the formatters and output conventions of a [Printer].
//
// A nil Address or Chars omits that column. A nil Bytes uses
// [DefaultByteFormat].
type Config struct {
	Address AddressFormatter
	Bytes   ByteFormatter
	Chars   CharFormatter

	// Dedup collapses runs of rows identical to the previous row into a
	// single DedupMarker line.
	Dedup bool

	// RowSeparator ends every row. Default: "\n".
	RowSeparator string

	// DedupMarker replaces a run of duplicate rows. Default: "*".
	DedupMarker string

	// OmitFinalSeparator drops the row separator after the closing address
	// line written on finish.
	OmitFinalSeparator bool
}

// DefaultConfig returns a config printing a hex address, four groups of
// four hex bytes and a character column between pipes.
func DefaultConfig() Config {
	return Config{
		Address:      DefaultAddressFormat(),
		Bytes:        DefaultByteFormat(),
		Chars:        DefaultCharFormat(),
		RowSeparator: "\n",
		DedupMarker:  "*",
	}
}

func (c Config) withDefaults() Config {
	if c.Bytes == nil {
		c.Bytes = DefaultByteFormat()
	}
	if c.RowSeparator == "" {
		c.RowSeparator = "\n"
	}
	if c.DedupMarker == "" {
		c.DedupMarker = "*"
	}
	return c
}
