package sink

// Buffer is a fixed-capacity in-memory Sink. Once full it accepts nothing
// more, the way a congested transmit buffer would.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer holding at most capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) PutByte(c byte) int {
	if len(b.buf) == cap(b.buf) {
		return 0
	}
	b.buf = append(b.buf, c)
	return 1
}

func (b *Buffer) Put(p []byte) int {
	n := min(len(p), cap(b.buf)-len(b.buf))
	b.buf = append(b.buf, p[:n]...)
	return n
}

// Bytes returns the accepted bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) String() string {
	return string(b.buf)
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

// Available returns how many more bytes the buffer accepts.
func (b *Buffer) Available() int {
	return cap(b.buf) - len(b.buf)
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
