package hexer

import (
	"fmt"
	"strconv"
)

// ByteStyle is the numeral style of a byte cell.
type ByteStyle int

const (
	Hex     ByteStyle = iota // de
	Binary                   // 11011110
	Decimal                  // 222, right aligned to three columns
	Octal                    // 336
	ASCII                    // printable character or "."
	Caret                    // " A" for printable, "^@" for control bytes
)

var byteStyles = []ByteStyle{Hex, Binary, Decimal, Octal, ASCII, Caret}

var byteStyleNames = map[ByteStyle]string{
	Hex:     "hex",
	Binary:  "binary",
	Decimal: "decimal",
	Octal:   "octal",
	ASCII:   "ascii",
	Caret:   "caret",
}

// Short CLI letters, as in "-b h".
var byteStyleLetters = map[string]ByteStyle{
	"h": Hex,
	"b": Binary,
	"d": Decimal,
	"o": Octal,
	"c": ASCII,
	"C": Caret,
}

// String returns the style name.
func (s ByteStyle) String() string {
	if name, ok := byteStyleNames[s]; ok {
		return name
	}
	return "ByteStyle(" + strconv.Itoa(int(s)) + ")"
}

// Width returns the number of columns a single cell of this style occupies.
func (s ByteStyle) Width() int {
	switch s {
	case Binary:
		return 8
	case Decimal, Octal:
		return 3
	case ASCII:
		return 1
	default:
		return 2
	}
}

// ByteStyles returns all supported byte styles.
func ByteStyles() []ByteStyle {
	out := make([]ByteStyle, len(byteStyles))
	copy(out, byteStyles)
	return out
}

// ParseByteStyle accepts a style name or its single CLI letter
// (h, b, d, o, c, C).
func ParseByteStyle(s string) (ByteStyle, error) {
	if st, ok := byteStyleLetters[s]; ok {
		return st, nil
	}
	for _, st := range byteStyles {
		if byteStyleNames[st] == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: byte style %q", ErrUnsupportedStyle, s)
}

const lowerHex = "0123456789abcdef"

// Caret notation for the C0 control range, indexed by byte value.
const caretTable = "@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_"

const (
	asciiPlaceholder = '.'
	asciiDEL         = 0x7f
)

func isPrintable(b byte) bool { return b >= 0x20 && b < asciiDEL }

// AppendByte appends the cell text of b to dst.
func (s ByteStyle) AppendByte(dst []byte, b byte) []byte {
	switch s {
	case Binary:
		for i := 7; i >= 0; i-- {
			dst = append(dst, '0'+(b>>uint(i))&1)
		}
		return dst
	case Decimal:
		switch {
		case b < 10:
			dst = append(dst, ' ', ' ')
		case b < 100:
			dst = append(dst, ' ')
		}
		return strconv.AppendUint(dst, uint64(b), 10)
	case Octal:
		return append(dst, '0'+b>>6, '0'+(b>>3)&7, '0'+b&7)
	case ASCII:
		if isPrintable(b) {
			return append(dst, b)
		}
		return append(dst, asciiPlaceholder)
	case Caret:
		switch {
		case int(b) < len(caretTable):
			return append(dst, '^', caretTable[b])
		case b == asciiDEL:
			return append(dst, '^', '?')
		case isPrintable(b):
			return append(dst, ' ', b)
		default:
			return append(dst, ' ', asciiPlaceholder)
		}
	default:
		return append(dst, lowerHex[b>>4], lowerHex[b&0x0f])
	}
}

// AddressBase is the numeral base of the address column.
type AddressBase int

const (
	AddressHex AddressBase = iota
	AddressBinary
	AddressDecimal
	AddressOctal
)

var addressBaseLetters = map[byte]AddressBase{
	'h': AddressHex,
	'b': AddressBinary,
	'd': AddressDecimal,
	'o': AddressOctal,
}

// Radix returns the numeric base.
func (b AddressBase) Radix() int {
	switch b {
	case AddressBinary:
		return 2
	case AddressDecimal:
		return 10
	case AddressOctal:
		return 8
	default:
		return 16
	}
}

// ParseAddressStyle parses strings like "h8" or "d" into a base and a
// minimum width. A missing width yields defWidth.
func ParseAddressStyle(s string, defWidth int) (AddressBase, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty address style", ErrUnsupportedStyle)
	}
	base, ok := addressBaseLetters[s[0]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: address style %q", ErrUnsupportedStyle, s)
	}
	if len(s) == 1 {
		return base, defWidth, nil
	}
	width, err := strconv.Atoi(s[1:])
	if err != nil || width < 0 {
		return 0, 0, fmt.Errorf("%w: address width %q", ErrUnsupportedStyle, s[1:])
	}
	return base, width, nil
}
