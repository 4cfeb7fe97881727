package knowledge

import "go/types"

// NumfmtPath is the import path rewritten calls refer to.
const NumfmtPath = "github.com/m-ocean-it/go-tinyprint/numfmt"

// Entry is the numfmt function taking values of one basic kind.
type Entry struct {
	Func string

	// Param is the kind of the function's value parameter.
	Param types.BasicKind

	Signed bool
}

// Entries maps integer kinds to their numfmt entry point. Unsigned kinds
// share Uint; int goes through Int64.
var Entries = map[types.BasicKind]Entry{
	types.Int:     {Func: "Int64", Param: types.Int64, Signed: true},
	types.Int8:    {Func: "Int8", Param: types.Int8, Signed: true},
	types.Int16:   {Func: "Int16", Param: types.Int16, Signed: true},
	types.Int32:   {Func: "Int32", Param: types.Int32, Signed: true},
	types.Int64:   {Func: "Int64", Param: types.Int64, Signed: true},
	types.Uint:    {Func: "Uint", Param: types.Uint64},
	types.Uint8:   {Func: "Uint", Param: types.Uint64},
	types.Uint16:  {Func: "Uint", Param: types.Uint64},
	types.Uint32:  {Func: "Uint", Param: types.Uint64},
	types.Uint64:  {Func: "Uint", Param: types.Uint64},
	types.Uintptr: {Func: "Uint", Param: types.Uint64},

	types.UntypedInt:  {Func: "Int64", Param: types.Int64, Signed: true},
	types.UntypedRune: {Func: "Int32", Param: types.Int32, Signed: true},
}
