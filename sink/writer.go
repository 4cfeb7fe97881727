// Package sink provides printer.Sink implementations.
package sink

import "io"

// Writer adapts an io.Writer such as a serial port, socket or file. The first
// write error is kept until ClearErr so callers can check it once after a
// batch of prints.
type Writer struct {
	w   io.Writer
	err error
	one [1]byte
}

// NewWriter returns a Sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) PutByte(b byte) int {
	s.one[0] = b
	return s.Put(s.one[:])
}

func (s *Writer) Put(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	n, err := s.w.Write(p)
	if err != nil && s.err == nil {
		s.err = err
	}
	return n
}

// Err returns the first error reported by the underlying writer.
func (s *Writer) Err() error {
	return s.err
}

// ClearErr forgets the recorded error.
func (s *Writer) ClearErr() {
	s.err = nil
}
