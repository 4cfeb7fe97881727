// Package source provides printer.ByteSource implementations for the three
// memory kinds text can live in: plain memory, read-only program data and
// persistent byte memory.
package source

// Bytes is text held in ordinary memory. It ends at its first zero byte or
// at the end of the slice, whichever comes first.
type Bytes []byte

func (b Bytes) ByteAt(off int) byte {
	if off < 0 || off >= len(b) {
		return 0
	}
	return b[off]
}

// Text is text compiled into the program's read-only data, typically a
// string constant.
type Text string

func (t Text) ByteAt(off int) byte {
	if off < 0 || off >= len(t) {
		return 0
	}
	return t[off]
}
