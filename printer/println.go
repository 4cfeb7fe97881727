package printer

// The Println variants print their value and then the line terminator,
// returning the sum of both counts.

func (p *Printer) PrintlnUint8(v uint8, base, width uint8) int {
	return p.PrintUint8(v, base, width) + p.Println()
}

func (p *Printer) PrintlnUint16(v uint16, base, width uint8) int {
	return p.PrintUint16(v, base, width) + p.Println()
}

func (p *Printer) PrintlnUint32(v uint32, base, width uint8) int {
	return p.PrintUint32(v, base, width) + p.Println()
}

func (p *Printer) PrintlnUint64(v uint64, base, width uint8) int {
	return p.PrintUint64(v, base, width) + p.Println()
}

func (p *Printer) PrintlnInt8(v int8, base, width uint8) int {
	return p.PrintInt8(v, base, width) + p.Println()
}

func (p *Printer) PrintlnInt16(v int16, base, width uint8) int {
	return p.PrintInt16(v, base, width) + p.Println()
}

func (p *Printer) PrintlnInt32(v int32, base, width uint8) int {
	return p.PrintInt32(v, base, width) + p.Println()
}

func (p *Printer) PrintlnInt64(v int64, base, width uint8) int {
	return p.PrintInt64(v, base, width) + p.Println()
}

func (p *Printer) PrintlnFloat32(v float32, width, frac uint8) int {
	return p.PrintFloat32(v, width, frac) + p.Println()
}

func (p *Printer) PrintlnFloat64(v float64, width, frac uint8) int {
	return p.PrintFloat64(v, width, frac) + p.Println()
}

func (p *Printer) PrintlnChar(c byte) int {
	return p.PrintChar(c) + p.Println()
}

func (p *Printer) PrintlnString(s string) int {
	return p.PrintString(s) + p.Println()
}

func (p *Printer) PrintlnSource(src ByteSource) int {
	return p.PrintSource(src) + p.Println()
}

func (p *Printer) PrintlnRenderable(r Renderable) int {
	return p.PrintRenderable(r) + p.Println()
}

func (p *Printer) PrintlnRaw(b []byte) int {
	return p.PrintRaw(b) + p.Println()
}
