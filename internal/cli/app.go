// Package cli implements the hexer command.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/fatih/color"

	"github.com/bjaus/hexer"
	"github.com/bjaus/hexer/highlight"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitIO    = 1
	ExitUsage = 2
)

const readBufferSize = 64 * 1024

// Run executes the command with args (without the program name) and
// returns the exit code. Errors are reported on stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := ParseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		errorf(stderr, "%v", err)
		return ExitUsage
	}

	cfg, err := opts.Config(styler(opts.Color, stdout))
	if err != nil {
		errorf(stderr, "%v", err)
		return ExitUsage
	}

	in, closeIn, err := openInput(opts.File, stdin)
	if err != nil {
		errorf(stderr, "%v", err)
		return ExitIO
	}
	defer closeIn()

	if err := dump(in, stdout, stderr, opts, cfg); err != nil {
		if IsBrokenPipe(err) {
			return ExitOK
		}
		errorf(stderr, "%v", err)
		return ExitIO
	}
	return ExitOK
}

func dump(in io.Reader, stdout, stderr io.Writer, opts Options, cfg hexer.Config) error {
	skipped, err := skip(in, opts.Skip)
	if err != nil {
		return fmt.Errorf("skip: %w", err)
	}
	if skipped < opts.Skip {
		warnf(stderr, opts.Quiet, "input ends at %d, before the skip offset %d", skipped, opts.Skip)
	}
	if opts.Length >= 0 {
		in = io.LimitReader(in, opts.Length)
	}

	out := bufio.NewWriter(stdout)
	p := hexer.New(out, opts.StartAddress(), cfg)

	// Rows read before a failure are still written, and the first error wins.
	err = copyInput(p, in)
	if _, ferr := p.Finish(); err == nil {
		err = ferr
	}
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func copyInput(dst io.Writer, in io.Reader) error {
	buf := make([]byte, readBufferSize)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return err
			}
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("read: %w", rerr)
		}
	}
}

// skip discards n bytes of in, seeking when in is a regular file. It returns
// how many bytes were actually skipped.
func skip(in io.Reader, n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if f, ok := in.(*os.File); ok {
		if st, err := f.Stat(); err == nil && st.Mode().IsRegular() {
			target := min(n, st.Size())
			if _, err := f.Seek(target, io.SeekStart); err != nil {
				return 0, err
			}
			return target, nil
		}
	}
	skipped, err := io.CopyN(io.Discard, in, n)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return skipped, err
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// styler returns the colouring for mode, or nil for plain output. In auto
// mode only a terminal stdout is coloured.
func styler(mode string, stdout io.Writer) hexer.Styler {
	switch mode {
	case ColorNever:
		return nil
	case ColorAuto:
		if stdout != io.Writer(os.Stdout) || color.NoColor {
			return nil
		}
	}
	palette := highlight.DefaultPalette()
	palette.Force(true)
	return palette.Styler()
}

// IsBrokenPipe reports whether err comes from a reader of our output going
// away, as with `hexer big.bin | head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

func errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "hexer: "+format+"\n", a...)
}

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "hexer: warning: "+format+"\n", a...)
}
