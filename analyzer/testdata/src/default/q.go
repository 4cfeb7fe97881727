package p

import "fmt"

func bar() {
	n := -5
	_ = fmt.Sprintf("%5d", n)

	var u uint16 = 10
	_ = fmt.Sprintf("%x", u)

	_ = fmt.Sprintf("%X", n)

	f := 1.5
	_ = fmt.Sprintf("%8.2f", f)

	_ = fmt.Sprintf("%d %d", u)

	_ = fmt.Sprintf("%v", u)

	_ = fmt.Sprintf("%+d", n)

	_ = fmt.Sprintf("%.25f", f)

	_ = fmt.Sprintf("%05d", u)

	_ = fmt.Sprintf("%.2f", f)

	_ = fmt.Sprintf("%.2f", 0.125)

	_ = fmt.Sprintf("%.0f", 2.5)

	_ = fmt.Sprintf("%f", 1e14)

	var err error
	_ = fmt.Sprintf("%s", err)

	var s fmt.Stringer
	_ = fmt.Sprintf("%s", s)

	cs := &customStringer{}
	_ = fmt.Sprintf("%s", cs)
}
