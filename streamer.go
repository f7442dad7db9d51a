package hexer

import (
	"bytes"
	"io"
)

// rowState drives row deduplication.
type rowState int

const (
	// canWrite: the current row is written as its bytes arrive.
	canWrite rowState = iota
	// needsPlaceholder: the current row matches the previous row so far and
	// its bytes are held back. If it completes, the marker is written.
	needsPlaceholder
	// skipped: the marker has been written for this run. A matching row is
	// dropped.
	skipped
)

func (s rowState) String() string {
	switch s {
	case needsPlaceholder:
		return "needs-placeholder"
	case skipped:
		return "skipped"
	default:
		return "can-write"
	}
}

// streamer assembles rows from arbitrary chunks and writes them to out.
type streamer struct {
	out   io.Writer
	addr  AddressFormatter
	bytes ByteFormatter
	chars CharFormatter
	gw    *groupedWriter

	bpr          int
	dedup        bool
	rowSep       string
	marker       string
	omitFinalSep bool

	written   uint64 // bytes accepted so far
	printable uint64 // address shown for byte 0
	rowStart  uint64 // value of written at the start of the current row

	cache     []byte // current row, or the previous one while deduplicating
	available int
	state     rowState
}

func newStreamer(out io.Writer, printable uint64, cfg Config) *streamer {
	cfg = cfg.withDefaults()
	gr := cfg.Bytes.Grouping().orDefault()
	return &streamer{
		out:          out,
		addr:         cfg.Address,
		bytes:        cfg.Bytes,
		chars:        cfg.Chars,
		gw:           newGroupedWriter(gr, cfg.Bytes.ByteOrder()),
		bpr:          gr.BytesPerRow(),
		dedup:        cfg.Dedup,
		rowSep:       cfg.RowSeparator,
		marker:       cfg.DedupMarker,
		omitFinalSep: cfg.OmitFinalSeparator,
		printable:    printable,
		cache:        make([]byte, gr.BytesPerRow()),
	}
}

// push consumes b entirely unless the sink fails. It returns the number of
// bytes accepted before the failure.
func (s *streamer) push(b []byte) (int, error) {
	consumed := 0
	for len(b) > 0 {
		n := min(len(b), s.bpr-s.available)
		if err := s.accept(b[:n]); err != nil {
			return consumed, err
		}
		consumed += n
		b = b[n:]
	}
	return consumed, nil
}

// accept handles a chunk that never crosses a row boundary.
func (s *streamer) accept(chunk []byte) error {
	if s.available == 0 {
		s.rowStart = s.written
		if s.dedup && s.written > 0 && s.state == canWrite {
			s.state = needsPlaceholder
		}
	}

	end := s.available + len(chunk)
	if end > s.bpr {
		panic("hexer: chunk overruns the row cache")
	}

	if s.state != canWrite {
		if bytes.Equal(s.cache[s.available:end], chunk) {
			s.advance(len(chunk))
			if s.available == 0 {
				return s.closeDuplicate()
			}
			return nil
		}
		// The row differs: release what was held back and write normally.
		s.state = canWrite
		if err := s.emit(s.cache[:s.available]); err != nil {
			return err
		}
	}

	copy(s.cache[s.available:end], chunk)
	if err := s.emit(chunk); err != nil {
		return err
	}
	s.advance(len(chunk))
	return nil
}

func (s *streamer) advance(n int) {
	s.written += uint64(n)
	s.available += n
	if s.available == s.bpr {
		s.available = 0
	}
}

func (s *streamer) closeDuplicate() error {
	if s.state != needsPlaceholder {
		return nil
	}
	s.state = skipped
	return s.writeStrings(s.marker, s.rowSep)
}

// emit feeds b through the grouped writer, which calls back into s.
func (s *streamer) emit(b []byte) error {
	for len(b) > 0 {
		n, err := s.gw.write(b, s)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (s *streamer) startRow() error {
	if s.addr != nil {
		seps := s.addr.Separators()
		if err := s.writeStrings(seps.Leading); err != nil {
			return err
		}
		if err := s.addr.FormatAddress(s.out, s.printable+s.rowStart); err != nil {
			return err
		}
		if err := s.writeStrings(seps.Trailing); err != nil {
			return err
		}
	}
	return s.writeStrings(s.bytes.Separators().Leading)
}

func (s *streamer) ready(b []byte, at int) error {
	return s.bytes.FormatBytes(s.out, b, at)
}

func (s *streamer) stored(int) error { return nil }

func (s *streamer) finishRow() error {
	return s.closeRow(s.cache)
}

// closeRow writes everything after the bytes of a row: the byte column
// trailer, the char column for row, and the row separator.
func (s *streamer) closeRow(row []byte) error {
	if err := s.writeStrings(s.bytes.Separators().Trailing); err != nil {
		return err
	}
	if s.chars != nil {
		seps := s.chars.Separators()
		if err := s.writeStrings(seps.Leading); err != nil {
			return err
		}
		if err := s.chars.FormatChars(s.out, row); err != nil {
			return err
		}
		if err := s.chars.FormatPadding(s.out, s.bpr-len(row)); err != nil {
			return err
		}
		if err := s.writeStrings(seps.Trailing); err != nil {
			return err
		}
	}
	return s.writeStrings(s.rowSep)
}

// writeTail finishes a pending partial row and writes the closing address
// line. It must be called once, after the last push.
func (s *streamer) writeTail() error {
	if s.written == 0 {
		return nil
	}
	if s.available > 0 {
		if s.state != canWrite {
			// A short row is never a duplicate, even if it matches so far.
			s.state = canWrite
			if err := s.emit(s.cache[:s.available]); err != nil {
				return err
			}
		}
		if err := s.gw.flush(s.ready); err != nil {
			return err
		}
		if err := s.bytes.FormatPadding(s.out, s.available); err != nil {
			return err
		}
		if err := s.closeRow(s.cache[:s.available]); err != nil {
			return err
		}
		s.available = 0
	}
	if s.addr == nil {
		return nil
	}
	if err := s.writeStrings(s.addr.Separators().Leading); err != nil {
		return err
	}
	if err := s.addr.FormatAddress(s.out, s.printable+s.written); err != nil {
		return err
	}
	if s.omitFinalSep {
		return nil
	}
	return s.writeStrings(s.rowSep)
}

func (s *streamer) writeStrings(parts ...string) error {
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := io.WriteString(s.out, p); err != nil {
			return err
		}
	}
	return nil
}
