// Package printer routes typed values through the numfmt formatters and
// writes the result to a Sink, mirroring the print/println family found on
// embedded serial ports.
//
// Every operation returns the number of bytes the Sink accepted. A Printer
// never retries, buffers or reports errors: a Sink that accepts fewer bytes
// than offered simply shows up as a smaller count.
package printer

import "github.com/m-ocean-it/go-tinyprint/numfmt"

// Sink is the only I/O point of a Printer.
type Sink interface {
	// PutByte offers one byte and returns 1 if it was accepted, 0 otherwise.
	PutByte(b byte) int
	// Put offers p and returns how many of its bytes were accepted.
	Put(p []byte) int
}

// ByteSource yields a zero-terminated byte sequence. ByteAt must return 0
// at and past the end of the sequence.
type ByteSource interface {
	ByteAt(off int) byte
}

// Renderable is implemented by values that know how to write themselves.
type Renderable interface {
	RenderTo(s Sink) int
}

// Printer formats values into a borrowed Sink. It holds no state that
// changes between calls.
type Printer struct {
	sink  Sink
	limit float64
}

// Option configures a Printer.
type Option func(*Printer)

// WithFloatLimit makes floats whose magnitude exceeds limit print as "ovf".
// Use numfmt.LegacyLimit for output compatible with 32-bit printers.
func WithFloatLimit(limit float64) Option {
	return func(p *Printer) {
		p.limit = limit
	}
}

// New returns a Printer writing to s.
func New(s Sink, opts ...Option) *Printer {
	p := &Printer{sink: s}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) digits(d numfmt.Digits) int {
	return p.sink.Put(d.Bytes())
}

func (p *Printer) PrintUint8(v uint8, base, width uint8) int {
	return p.digits(numfmt.Uint(uint64(v), base, width))
}

func (p *Printer) PrintUint16(v uint16, base, width uint8) int {
	return p.digits(numfmt.Uint(uint64(v), base, width))
}

func (p *Printer) PrintUint32(v uint32, base, width uint8) int {
	return p.digits(numfmt.Uint(uint64(v), base, width))
}

func (p *Printer) PrintUint64(v uint64, base, width uint8) int {
	return p.digits(numfmt.Uint(v, base, width))
}

func (p *Printer) PrintInt8(v int8, base, width uint8) int {
	return p.digits(numfmt.Int8(v, base, width))
}

func (p *Printer) PrintInt16(v int16, base, width uint8) int {
	return p.digits(numfmt.Int16(v, base, width))
}

func (p *Printer) PrintInt32(v int32, base, width uint8) int {
	return p.digits(numfmt.Int32(v, base, width))
}

func (p *Printer) PrintInt64(v int64, base, width uint8) int {
	return p.digits(numfmt.Int64(v, base, width))
}

// PrintFloat32 widens v to float64 and prints it like PrintFloat64.
func (p *Printer) PrintFloat32(v float32, width, frac uint8) int {
	return p.PrintFloat64(float64(v), width, frac)
}

// PrintFloat64 prints v with frac fractional digits in a field of at least
// width bytes.
func (p *Printer) PrintFloat64(v float64, width, frac uint8) int {
	return p.digits(numfmt.FloatLimit(v, width, frac, p.limit))
}

// PrintChar writes c, preceding a line feed with a carriage return.
func (p *Printer) PrintChar(c byte) int {
	n := 0
	if c == '\n' {
		n += p.sink.PutByte('\r')
	}
	return n + p.sink.PutByte(c)
}

// PrintString writes s byte by byte through PrintChar.
func (p *Printer) PrintString(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n += p.PrintChar(s[i])
	}
	return n
}

// PrintSource writes the bytes of src through PrintChar up to its
// terminating zero.
func (p *Printer) PrintSource(src ByteSource) int {
	n := 0
	for off := 0; ; off++ {
		c := src.ByteAt(off)
		if c == 0 {
			return n
		}
		n += p.PrintChar(c)
	}
}

// PrintRenderable lets r write itself to the Sink.
func (p *Printer) PrintRenderable(r Renderable) int {
	return r.RenderTo(p.sink)
}

// PrintRaw writes b as a single chunk without line-ending translation.
func (p *Printer) PrintRaw(b []byte) int {
	return p.sink.Put(b)
}

// Println writes the line terminator "\r\n".
func (p *Printer) Println() int {
	return p.PrintChar('\n')
}
