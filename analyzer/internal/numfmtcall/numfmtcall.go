package numfmtcall

type Op interface {
	isOp()
}

// Integer calls one of numfmt.Uint/Int8/Int16/Int32/Int64.
type Integer struct {
	Func string

	// Cast, when set, names the type the argument is converted to first.
	Cast string

	Base  int
	Width int
}

func (i Integer) isOp() {}

// Float calls numfmt.Float with a zero width. Only offered for constants
// whose output was checked against fmt.
type Float struct {
	// Frac is the number of fractional digits, 6 for a bare %f.
	Frac int

	CastToFloat64 bool
}

func (f Float) isOp() {}
