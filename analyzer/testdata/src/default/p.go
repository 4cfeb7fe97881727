package p

import "fmt" // want "Fix imports"

func foo() {
	i64 := int64(2)
	_ = fmt.Sprintf("High %d!", i64) // want "Sprintf could be replaced with numfmt"

	i := 2
	_ = fmt.Sprintf("%d is int", i) // want "Sprintf could be replaced with numfmt"

	_ = fmt.Sprintf("%s, %s, %s", "a", "b", "c") // want "Sprintf could be replaced with numfmt"

	_ = fmt.Sprintf("%s is %d years old. Pi is %f", "John", 3, 3.14) // want "Sprintf could be replaced with numfmt"

	const f32 float32 = 3.14
	_ = fmt.Sprintf("Pi is %.2f", f32) // want "Sprintf could be replaced with numfmt"

	cs := customStringer{}
	_ = fmt.Sprintf("This is %s", cs) // want "Sprintf could be replaced with numfmt"

	var b uint8 = 255
	_ = fmt.Sprintf("0x%04X", b) // want "Sprintf could be replaced with numfmt"

	var u uint = 7
	_ = fmt.Sprintf("[%5d] 100%%", u) // want "Sprintf could be replaced with numfmt"

	var r int32 = -1
	_ = fmt.Sprintf("%d", r) // want "Sprintf could be replaced with numfmt"

	ce := codeError(3)
	_ = fmt.Sprintf("failed: %s", ce) // want "Sprintf could be replaced with numfmt"

	l := label("tag")
	_ = fmt.Sprintf("<%s>", l) // want "Sprintf could be replaced with numfmt"

	var perm uint32 = 0o755
	_ = fmt.Sprintf("mode %o", perm) // want "Sprintf could be replaced with numfmt"

	_ = fmt.Sprintf("%08b", b) // want "Sprintf could be replaced with numfmt"

	lv := level(1)
	_ = fmt.Sprintf("level %s", lv+1) // want "Sprintf could be replaced with numfmt"
}

type customStringer struct{}

func (c customStringer) String() string {
	return "Hello from custom stringer!"
}

type codeError int

func (e codeError) Error() string {
	return "code"
}

type label string

type level int

func (l level) String() string {
	return "level"
}
