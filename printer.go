package hexer

import (
	"io"
)

// Printer writes a hex dump of the bytes pushed into it to a sink.
//
// Rows are written as soon as they are complete, and the byte column as soon
// as its groups are. The output does not depend on how the input is split
// across calls to [Printer.Push].
//
// A Printer must be finished with [Printer.Finish] or [Printer.Close] to
// write the last partial row and the closing address line. Both are
// idempotent, so the usual pattern is:
//
//	p := hexer.New(os.Stdout, 0, hexer.DefaultConfig())
//	defer p.Close()
//
// A Printer is not safe for concurrent use.
type Printer[W io.Writer] struct {
	w      W
	s      *streamer
	closed bool
	err    error
}

// New returns a printer writing to w. start is the address printed for the
// first byte. No output is written until the first push.
func New[W io.Writer](w W, start uint64, cfg Config) *Printer[W] {
	return &Printer[W]{w: w, s: newStreamer(w, start, cfg)}
}

// Push formats b. It returns len(b) unless the sink fails, in which case the
// sink's error is returned as is. After a failure the output is incomplete
// and every later call returns the same error.
func (p *Printer[W]) Push(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if p.closed {
		return 0, ErrClosed
	}
	n, err := p.s.push(b)
	if err != nil {
		p.err = err
	}
	return n, err
}

// Write implements [io.Writer]. It is the same as [Printer.Push].
func (p *Printer[W]) Write(b []byte) (int, error) {
	return p.Push(b)
}

// Finish writes the pending partial row and the closing address line, then
// gives the sink back. Calling it again writes nothing.
func (p *Printer[W]) Finish() (W, error) {
	if p.closed || p.err != nil {
		p.closed = true
		return p.w, p.err
	}
	p.closed = true
	if err := p.s.writeTail(); err != nil {
		p.err = err
	}
	return p.w, p.err
}

// Close implements [io.Closer] by calling [Printer.Finish].
func (p *Printer[W]) Close() error {
	_, err := p.Finish()
	return err
}

// Address returns the address the next pushed byte will be printed at.
func (p *Printer[W]) Address() uint64 {
	return p.s.printable + p.s.written
}

// Written returns the number of bytes pushed so far.
func (p *Printer[W]) Written() uint64 {
	return p.s.written
}
