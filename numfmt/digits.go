// Package numfmt converts integers and floating-point values into ASCII
// digit sequences. Nothing in this package allocates or performs I/O: every
// formatter returns a Digits value that the caller writes wherever it wants.
package numfmt

const (
	// MaxWidth is the largest minimum width honored by the integer formatter.
	MaxWidth = 16

	// capacity fits 64 base-2 digits plus a sign.
	capacity = 64 + 1
)

const digitChars = "0123456789ABCDEF"

// Digits is a fixed-capacity buffer holding the bytes of one formatted value.
// The zero value is empty and ready to use.
type Digits struct {
	buf [capacity]byte
	n   uint8
}

// Bytes returns the formatted bytes. The slice aliases d.
func (d *Digits) Bytes() []byte {
	return d.buf[:d.n]
}

// Len returns the number of formatted bytes.
func (d Digits) Len() int {
	return int(d.n)
}

// String returns the formatted bytes as a string.
func (d Digits) String() string {
	return string(d.buf[:d.n])
}

// AppendTo appends the formatted bytes to dst and returns the extended buffer.
func (d Digits) AppendTo(dst []byte) []byte {
	return append(dst, d.buf[:d.n]...)
}

func (d *Digits) push(b byte) {
	d.buf[d.n] = b
	d.n++
}

// put lays out m in base b right-aligned in at least width positions,
// filling the unused leading positions with pad.
func (d *Digits) put(m, b uint64, width int, pad byte) {
	var tmp [64]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = digitChars[m%b]
		m /= b
		if m == 0 {
			break
		}
	}

	for n := len(tmp) - i; n < width; n++ {
		d.push(pad)
	}
	d.n += uint8(copy(d.buf[d.n:], tmp[i:]))
}

func literal(s string) Digits {
	var d Digits
	d.n = uint8(copy(d.buf[:], s))
	return d
}
