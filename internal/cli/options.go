package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/hexer"
)

// Defaults mirror hexdump -C.
const (
	defGroupSize   = 8
	defGroupCount  = 2
	defAddrWidth   = 8
	defGroupSep    = "  "
	defByteSep     = " "
	defPlaceholder = "."
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var errUsage = errors.New("usage")

// Columns holds the leading and trailing separators of every column.
type Columns struct {
	Address hexer.Separators
	Bytes   hexer.Separators
	Chars   hexer.Separators
}

// Options is the parsed command line, after any profile has been applied.
type Options struct {
	Address      string
	Bytes        string
	Grouping     string
	GroupSep     string
	ByteSep      string
	Placeholder  string
	Skip         int64
	Length       int64 // negative: until EOF
	Start        int64 // negative: same as Skip
	LittleEndian bool
	ShowAll      bool
	Color        string
	Profile      string
	Quiet        bool
	Columns      Columns
	File         string
}

func defaultOptions() Options {
	return Options{
		Address:     "h" + strconv.Itoa(defAddrWidth),
		Bytes:       "h",
		Grouping:    fmt.Sprintf("%d/%d", defGroupSize, defGroupCount),
		GroupSep:    defGroupSep,
		ByteSep:     defByteSep,
		Placeholder: defPlaceholder,
		Length:      -1,
		Start:       -1,
		Color:       ColorAuto,
		Columns: Columns{
			Address: hexer.NewSeparators("", " "),
			Bytes:   hexer.NewSeparators(" ", " "),
			Chars:   hexer.NewSeparators(" |", "|"),
		},
	}
}

func register(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.Address, "a", o.Address, "address style h|b|d|o[min_width], e.g. h8")
	fs.StringVar(&o.Bytes, "b", o.Bytes, "byte style: h hex, b binary, d decimal, o octal, c ASCII, C caret notation")
	fs.StringVar(&o.Grouping, "g", o.Grouping, "grouping SIZE/COUNT, or N for one group of N bytes")
	fs.StringVar(&o.GroupSep, "group-sep", o.GroupSep, "text between groups")
	fs.StringVar(&o.ByteSep, "byte-sep", o.ByteSep, "text between bytes of a group")
	fs.StringVar(&o.Placeholder, "placeholder", o.Placeholder, "character column glyph for unprintable bytes")
	fs.Int64Var(&o.Skip, "s", o.Skip, "skip `bytes` of input")
	fs.Int64Var(&o.Length, "n", o.Length, "dump at most `bytes` (negative: all)")
	fs.Int64Var(&o.Start, "A", o.Start, "first printed `address` (negative: the skip offset)")
	fs.BoolVar(&o.LittleEndian, "e", o.LittleEndian, "print groups little-endian")
	fs.BoolVar(&o.ShowAll, "v", o.ShowAll, "show duplicate rows instead of *")
	fs.StringVar(&o.Color, "color", o.Color, "colour bytes: auto|always|never")
	fs.StringVar(&o.Profile, "config", o.Profile, "YAML profile `file` with default options")
	fs.BoolVar(&o.Quiet, "q", o.Quiet, "suppress warnings")
}

// ParseOptions parses args. When --config names a profile, its values
// replace the defaults and flags given on the command line still win.
func ParseOptions(args []string, stderr io.Writer) (Options, error) {
	first := defaultOptions()
	fs := newFlagSet(stderr)
	register(fs, &first)
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts := defaultOptions()
	if first.Profile != "" {
		p, err := LoadProfile(first.Profile)
		if err != nil {
			return Options{}, err
		}
		p.Apply(&opts)
		// Parse again on top of the profile so explicit flags override it.
		fs = newFlagSet(stderr)
		register(fs, &opts)
		if err := fs.Parse(args); err != nil {
			return Options{}, err
		}
	} else {
		opts = first
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		return Options{}, fmt.Errorf("%w: at most one input file, got %d", errUsage, fs.NArg())
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func newFlagSet(stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("hexer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: hexer [flags] [FILE]")
		fmt.Fprintln(fs.Output(), "Dumps FILE, or standard input, as hex.")
		fs.PrintDefaults()
	}
	return fs
}

func (o Options) validate() error {
	if o.Skip < 0 {
		return fmt.Errorf("%w: -s must not be negative", errUsage)
	}
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: --color must be one of %s", errUsage, strings.Join([]string{ColorAuto, ColorAlways, ColorNever}, "|"))
	}
	if _, _, err := hexer.ParseAddressStyle(o.Address, defAddrWidth); err != nil {
		return err
	}
	if _, err := hexer.ParseByteStyle(o.Bytes); err != nil {
		return err
	}
	if _, err := hexer.ParseGrouping(o.Grouping, o.GroupSep, defGroupSize, defGroupCount); err != nil {
		return err
	}
	return nil
}

// StartAddress returns the address printed for the first dumped byte.
func (o Options) StartAddress() uint64 {
	if o.Start < 0 {
		return uint64(o.Skip)
	}
	return uint64(o.Start)
}

// Config builds the printer configuration. A non-nil st decorates byte and
// char cells.
func (o Options) Config(st hexer.Styler) (hexer.Config, error) {
	base, width, err := hexer.ParseAddressStyle(o.Address, defAddrWidth)
	if err != nil {
		return hexer.Config{}, err
	}
	style, err := hexer.ParseByteStyle(o.Bytes)
	if err != nil {
		return hexer.Config{}, err
	}
	grouping, err := hexer.ParseGrouping(o.Grouping, o.GroupSep, defGroupSize, defGroupCount)
	if err != nil {
		return hexer.Config{}, err
	}

	bytes := hexer.NewByteFormat(style, grouping, o.ByteSep, o.LittleEndian, o.Columns.Bytes)
	charStyle := style == hexer.ASCII || style == hexer.Caret
	if charStyle {
		// '.' already marks unprintable bytes in these styles.
		bytes = bytes.WithPadding(' ')
	}
	if st != nil {
		bytes = bytes.WithStyler(st)
	}

	cfg := hexer.DefaultConfig()
	cfg.Address = hexer.NewAddressFormat(base, width, o.Columns.Address)
	cfg.Bytes = bytes
	cfg.Chars = nil
	// The character styles already show the characters.
	if !charStyle {
		chars := hexer.NewCharFormat(o.Placeholder, o.Columns.Chars)
		if st != nil {
			chars = chars.WithStyler(st)
		}
		cfg.Chars = chars
	}
	cfg.Dedup = !o.ShowAll
	return cfg, nil
}
