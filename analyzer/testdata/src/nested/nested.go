package nested

import "fmt" // want "Fix imports"

func wrap(x uint) string {
	return fmt.Sprintf("[%s]", fmt.Sprintf("%d", x)) // want "Sprintf could be replaced with numfmt"
}
