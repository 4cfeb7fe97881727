package transform

import "github.com/m-ocean-it/go-tinyprint/analyzer/internal/numfmtcall"

type Transformation interface {
	isTransformation()
}

type NoOp struct{}

func (n NoOp) isTransformation() {}

type CallStringMethod struct{}

func (c CallStringMethod) isTransformation() {}

type CallErrorMethod struct{}

func (c CallErrorMethod) isTransformation() {}

// ConvertToString wraps the value in string(...), for named string types.
type ConvertToString struct{}

func (c ConvertToString) isTransformation() {}

type Numfmt struct {
	Op numfmtcall.Op
}

func (n Numfmt) isTransformation() {}
