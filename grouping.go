package hexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults used when a grouping is built from non-positive sizes.
const (
	DefaultBytesPerRow    = 16
	DefaultGroupSize      = 4
	DefaultNumberOfGroups = 4
)

// Group is a run of bytes rendered as a unit, followed by Separator when
// another group comes after it on the same row.
type Group struct {
	Size      int
	Separator string
}

// NewGroup returns a group of size bytes. A non-positive size falls back to
// DefaultGroupSize.
func NewGroup(size int, sep string) Group {
	if size <= 0 {
		size = DefaultGroupSize
	}
	return Group{Size: size, Separator: sep}
}

// Grouping describes how a row is split into groups. The zero value is
// treated as [DefaultGrouping] by the printer.
type Grouping struct {
	group   Group
	count   int
	rowWide bool
}

// RowWide returns a grouping with a single group spanning n bytes.
func RowWide(n int) Grouping {
	if n <= 0 {
		n = DefaultBytesPerRow
	}
	return Grouping{group: Group{Size: n}, count: 1, rowWide: true}
}

// RepeatingGroup returns count groups of g.Size bytes each.
func RepeatingGroup(g Group, count int) Grouping {
	if g.Size <= 0 {
		g.Size = DefaultGroupSize
	}
	if count <= 0 {
		count = DefaultNumberOfGroups
	}
	return Grouping{group: g, count: count}
}

// DefaultGrouping is four groups of four bytes separated by a space.
func DefaultGrouping() Grouping {
	return RepeatingGroup(NewGroup(DefaultGroupSize, " "), DefaultNumberOfGroups)
}

func (g Grouping) isZero() bool { return g.group.Size == 0 }

func (g Grouping) orDefault() Grouping {
	if g.isZero() {
		return DefaultGrouping()
	}
	return g
}

// BytesPerRow returns the number of bytes printed before a line break.
func (g Grouping) BytesPerRow() int { return g.group.Size * g.count }

// MaxGroupSize returns the size of the largest group in a row.
func (g Grouping) MaxGroupSize() int { return g.group.Size }

// Separator returns the text printed between groups.
func (g Grouping) Separator() string {
	if g.rowWide {
		return ""
	}
	return g.group.Separator
}

// GroupOfByte returns the index of the group holding byte n of a row.
func (g Grouping) GroupOfByte(n int) int {
	g.checkRange("GroupOfByte", n)
	return n / g.group.Size
}

// BytesLeftInGroupAfter returns how many bytes remain in the group that
// byte n belongs to, counting n itself. At the row end it returns zero.
func (g Grouping) BytesLeftInGroupAfter(n int) int {
	g.checkRange("BytesLeftInGroupAfter", n)
	if n == g.BytesPerRow() {
		return 0
	}
	return g.group.Size - n%g.group.Size
}

// ByteNumberInGroup returns the position of byte n inside its group.
func (g Grouping) ByteNumberInGroup(n int) int {
	g.checkRange("ByteNumberInGroup", n)
	return n % g.group.Size
}

// IsAlignedAt reports whether byte n starts a group.
func (g Grouping) IsAlignedAt(n int) bool {
	g.checkRange("IsAlignedAt", n)
	return n%g.group.Size == 0
}

// String renders the grouping in the syntax accepted by [ParseGrouping].
func (g Grouping) String() string {
	if g.rowWide {
		return strconv.Itoa(g.group.Size)
	}
	return fmt.Sprintf("%d/%d", g.group.Size, g.count)
}

func (g Grouping) checkRange(op string, n int) {
	if n < 0 || n > g.BytesPerRow() {
		panic(fmt.Sprintf("hexer: %s(%d) exceeds row length %d", op, n, g.BytesPerRow()))
	}
}

// ParseGrouping parses "N" as [RowWide](N) and "SIZE/COUNT" as
// [RepeatingGroup] with the given separator. Empty halves of "SIZE/COUNT"
// take defSize and defCount.
func ParseGrouping(s, sep string, defSize, defCount int) (Grouping, error) {
	sizeStr, countStr, repeating := strings.Cut(s, "/")
	if !repeating {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Grouping{}, fmt.Errorf("%w: %q", ErrInvalidGrouping, s)
		}
		return RowWide(n), nil
	}
	size, err := parseGroupingPart(sizeStr, defSize)
	if err != nil {
		return Grouping{}, fmt.Errorf("%w: %q", ErrInvalidGrouping, s)
	}
	count, err := parseGroupingPart(countStr, defCount)
	if err != nil {
		return Grouping{}, fmt.Errorf("%w: %q", ErrInvalidGrouping, s)
	}
	return RepeatingGroup(NewGroup(size, sep), count), nil
}

func parseGroupingPart(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
