// Package hexer renders byte streams as hex dumps, incrementally.
//
// A [Printer] accepts bytes in chunks of any size and writes each row as soon
// as it is complete. Every row has up to three columns:
//
//	00000000 deadbeef deadbeef 53696d70 6c652070 |........Simple p|
//	^ address ^ bytes, in groups                  ^ characters
//
// The output is the same however the input is chunked: pushing a file one
// byte at a time produces exactly what pushing it in one call does.
//
// # Formatters
//
// Each column is produced by a formatter chosen in [Config]:
//
//   - [AddressFormatter] → address column, omitted when nil
//   - [ByteFormatter] → byte column, required
//   - [CharFormatter] → character column, omitted when nil
//
// The built-in [AddressFormat], [ByteFormat] and [CharFormat] cover the
// usual styles. Any implementation of the interfaces can replace them.
//
// # Grouping
//
// A [Grouping] splits a row into groups. [RepeatingGroup] prints a number of
// equally sized groups with a separator between them, and [RowWide] prints
// the whole row as one group. Non-positive sizes fall back to
// [DefaultGroupSize], [DefaultNumberOfGroups] and [DefaultBytesPerRow].
//
// # Byte order
//
// A [ByteFormatter] declares a [ByteOrder]. [Relaxed] formatters receive
// bytes as soon as they arrive. [Strict] formatters, such as a little-endian
// [ByteFormat], only ever receive whole groups; the printer buffers the
// group until it is complete or the stream ends.
//
// # Deduplication
//
// With [Config.Dedup] set, a row identical to the row before it is replaced
// by a single "*" line, and further identical rows are dropped until a
// different row arrives. The comparison is incremental, so it works across
// arbitrary chunk boundaries. The first row is never collapsed.
//
// # Finishing
//
// [Printer.Finish] pads and writes a short last row and then a line holding
// the address just past the last byte, like hexdump -C. Repeated calls, and
// [Printer.Close] after Finish, write nothing.
//
// # Errors
//
// Errors from the sink are returned unchanged. The package exports sentinel
// errors for the rest:
//
//   - [ErrClosed]: push after finish
//   - [ErrUnsupportedStyle]: unknown byte or address style string
//   - [ErrInvalidGrouping]: malformed grouping string
package hexer
