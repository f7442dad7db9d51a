package hexer

// rowHandler receives the row lifecycle events of a groupedWriter.
type rowHandler interface {
	// startRow is called before the first byte of a row.
	startRow() error
	// ready hands over bytes that can be formatted, starting at offset at
	// within the row.
	ready(b []byte, at int) error
	// stored reports n bytes buffered until their group completes.
	stored(n int) error
	// finishRow is called after the last byte of a row.
	finishRow() error
}

// groupedWriter cuts incoming bytes at group and row boundaries. In Strict
// order it holds bytes back until their group is complete.
type groupedWriter struct {
	grouping Grouping
	order    ByteOrder

	address int // bytes seen, only used modulo the row length
	back    []byte
	avail   int
}

func newGroupedWriter(g Grouping, order ByteOrder) *groupedWriter {
	gw := &groupedWriter{grouping: g, order: order}
	if order == Strict {
		gw.back = make([]byte, g.MaxGroupSize())
	}
	return gw
}

// write consumes bytes up to the next group or row boundary and returns how
// many were taken. Callers loop until their input is exhausted.
func (gw *groupedWriter) write(b []byte, h rowHandler) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	gr := gw.grouping
	bpr := gr.BytesPerRow()
	inRow := gw.address % bpr

	if inRow == 0 {
		if err := h.startRow(); err != nil {
			return 0, err
		}
	}

	n := min(gr.BytesLeftInGroupAfter(inRow), bpr-inRow, len(b))
	rowDone := inRow+n == bpr

	if gw.order == Relaxed {
		gw.address += n
		if err := h.ready(b[:n], inRow); err != nil {
			return n, err
		}
		if rowDone {
			return n, h.finishRow()
		}
		return n, nil
	}

	if len(gw.back) == 0 {
		panic("hexer: strict order without a group buffer")
	}
	inGroup := gr.ByteNumberInGroup(inRow)
	if inGroup != gw.avail {
		panic("hexer: group buffer out of step with row offset")
	}
	copy(gw.back[inGroup:inGroup+n], b[:n])
	gw.avail += n
	gw.address += n

	if gw.avail < len(gw.back) && !rowDone {
		return n, h.stored(n)
	}

	group := gw.back[:gw.avail]
	at := inRow + n - gw.avail
	gw.avail = 0
	if err := h.ready(group, at); err != nil {
		return n, err
	}
	if rowDone {
		return n, h.finishRow()
	}
	return n, nil
}

// flush hands a partially filled group to fn. It is a no-op in Relaxed
// order or when no bytes are pending.
func (gw *groupedWriter) flush(fn func(b []byte, at int) error) error {
	if gw.avail == 0 {
		return nil
	}
	at := gw.address%gw.grouping.BytesPerRow() - gw.avail
	group := gw.back[:gw.avail]
	gw.avail = 0
	return fn(group, at)
}
