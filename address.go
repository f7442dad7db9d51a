package hexer

import (
	"io"
	"strconv"
)

// DefaultAddressWidth is the minimum number of digits of an address.
const DefaultAddressWidth = 8

// AddressFormat prints zero-padded addresses in a fixed base.
type AddressFormat struct {
	base     AddressBase
	minWidth int
	seps     Separators
}

// NewAddressFormat returns an address formatter. A negative minWidth is
// treated as zero.
func NewAddressFormat(base AddressBase, minWidth int, seps Separators) *AddressFormat {
	return &AddressFormat{base: base, minWidth: max(minWidth, 0), seps: seps}
}

// DefaultAddressFormat prints eight hex digits followed by a space.
func DefaultAddressFormat() *AddressFormat {
	return NewAddressFormat(AddressHex, DefaultAddressWidth, NewSeparators("", " "))
}

// FormatAddress implements [AddressFormatter].
func (f *AddressFormat) FormatAddress(w io.Writer, addr uint64) error {
	var digits [64]byte
	s := strconv.AppendUint(digits[:0], addr, f.base.Radix())
	buf := make([]byte, 0, max(f.minWidth, len(s)))
	for range f.minWidth - len(s) {
		buf = append(buf, '0')
	}
	buf = append(buf, s...)
	_, err := w.Write(buf)
	return err
}

// Separators implements [AddressFormatter].
func (f *AddressFormat) Separators() Separators { return f.seps }
