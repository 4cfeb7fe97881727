package analyzer

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/go-toolsmith/astcopy"

	"github.com/m-ocean-it/go-tinyprint/analyzer/internal/numfmtcall"
	"github.com/m-ocean-it/go-tinyprint/analyzer/internal/transform"
	"github.com/m-ocean-it/go-tinyprint/analyzer/knowledge"
	"github.com/m-ocean-it/go-tinyprint/numfmt"
)

// defaultFrac is the precision of a bare %f.
const defaultFrac = 6

func ProcessSprintfCall(
	typesInfo *types.Info,
	call *ast.CallExpr,
	filePkgOut *packagesFileResult,
) (ast.Expr, bool) {
	analyzed, ok := analyzeSprintfCall(typesInfo, call)
	if !ok {
		return nil, false
	}

	result, addedNumfmt, ok := constructResult(analyzed)
	if !ok {
		return nil, false
	}

	filePkgOut.fmtCount--
	filePkgOut.rewritten++
	if addedNumfmt {
		filePkgOut.addedNumfmt = addedNumfmt
	}

	return result, true
}

type analyzedSprintfCall struct {
	originalText string
	args         []sprintfArg
}

type sprintfArg struct {
	position       [2]int
	value          ast.Expr
	transformation transform.Transformation
}

// directive is one parsed %-directive. Only the '0' flag is recognised.
type directive struct {
	start int
	end   int
	verb  byte
	zero  bool
	width int // -1 when absent
	prec  int // -1 when absent
}

func analyzeSprintfCall(typesInfo *types.Info, call *ast.CallExpr) (analyzedSprintfCall, bool) {
	// TODO: account for numbered placeholders (%[1]s, etc.)

	var zero analyzedSprintfCall

	if len(call.Args) < 1 {
		return zero, false
	}
	s, ok := call.Args[0].(*ast.BasicLit)
	if !ok {
		return zero, false
	}

	verbArgs := call.Args[1:]
	if len(verbArgs) == 0 {
		// TODO: just use the string without fmt.Sprintf

		return zero, false
	}

	// A nested Sprintf gets its own fix; rewriting both would overlap.
	if slices.ContainsFunc(verbArgs, containsSprintf) {
		return zero, false
	}

	if s.Kind != token.STRING {
		// TODO support any expression of type string

		return zero, false
	}

	sprintfString, err := strconv.Unquote(s.Value)
	if err != nil {
		return zero, false
	}

	var entries []sprintfArg

	for i := 0; i < len(sprintfString); i++ {
		if sprintfString[i] != '%' {
			continue
		}

		d, ok := parseDirective(sprintfString, i)
		if !ok {
			return zero, false
		}
		i = d.end - 1

		if d.verb == '%' {
			if d.zero || d.width >= 0 || d.prec >= 0 {
				return zero, false
			}
			continue
		}

		if len(entries) >= len(verbArgs) {
			return zero, false
		}

		verbArg := verbArgs[len(entries)]

		t := resolveTransformation(typesInfo, verbArg, d)
		if t == nil {
			return zero, false
		}

		entries = append(entries, sprintfArg{
			position:       [2]int{d.start, d.end},
			transformation: t,
			value:          verbArg,
		})
	}

	if len(entries) != len(verbArgs) {
		// fmt would append %!(EXTRA ...)
		return zero, false
	}

	return analyzedSprintfCall{
		originalText: sprintfString,
		args:         entries,
	}, true
}

// parseDirective parses the directive starting with the '%' at s[i].
func parseDirective(s string, i int) (directive, bool) {
	d := directive{start: i, width: -1, prec: -1}

	j := i + 1
	if j < len(s) && s[j] == '0' {
		d.zero = true
		j++
	}

	j, d.width = parseNumber(s, j)

	if j < len(s) && s[j] == '.' {
		j, d.prec = parseNumber(s, j+1)
		if d.prec < 0 {
			d.prec = 0 // "%.f" means precision 0
		}
	}

	if j >= len(s) {
		return d, false
	}

	d.verb = s[j]
	d.end = j + 1

	return d, true
}

func parseNumber(s string, i int) (int, int) {
	n := -1
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < 0 {
			n = 0
		}
		if n < 1000 {
			n = n*10 + int(s[i]-'0')
		}
	}
	return i, n
}

// containsSprintf reports whether expr calls fmt.Sprintf anywhere inside it.
func containsSprintf(expr ast.Expr) bool {
	var found bool
	ast.Inspect(expr, func(n ast.Node) bool {
		selExpr, _ := n.(*ast.SelectorExpr)
		if selExpr != nil && isFmtSelector(selExpr) && selExpr.Sel.Name == "Sprintf" {
			found = true
		}
		return !found
	})
	return found
}

func resolveTransformation(typesInfo *types.Info, arg ast.Expr, d directive) transform.Transformation {
	dataType, ok := typesInfo.Types[arg]
	if !ok {
		return nil
	}
	if dataType.Type == nil {
		return nil
	}

	switch d.verb {
	case 's':
		if d.zero || d.width >= 0 || d.prec >= 0 {
			return nil
		}
		return resolveTransformationForSVerb(dataType.Type)
	case 'd':
		return resolveTransformationForInteger(dataType.Type, d, 10)
	case 'X':
		return resolveTransformationForInteger(dataType.Type, d, 16)
	case 'o':
		return resolveTransformationForInteger(dataType.Type, d, 8)
	case 'b':
		return resolveTransformationForInteger(dataType.Type, d, 2)
	case 'f':
		return resolveTransformationForFVerb(dataType, d)
	default:
		// %x prints lowercase digits, numfmt only uppercase.
		return nil
	}
}

func resolveTransformationForSVerb(t types.Type) transform.Transformation {
	switch t.Underlying().(type) {
	case *types.Interface, *types.Pointer:
		// fmt prints a nil receiver as <nil>, a direct method call panics.
		return nil
	}

	if types.Implements(t, knowledge.Interfaces["error"]) {
		return transform.CallErrorMethod{}
	}

	if types.Implements(t, knowledge.Interfaces["fmt.Stringer"]) {
		return transform.CallStringMethod{}
	}

	basic, _ := t.Underlying().(*types.Basic)
	if basic == nil || basic.Info()&types.IsString == 0 {
		return nil
	}

	if types.Identical(t, types.Typ[types.String]) || basic.Kind() == types.UntypedString {
		return transform.NoOp{}
	}
	return transform.ConvertToString{}
}

func resolveTransformationForInteger(t types.Type, d directive, base int) transform.Transformation {
	if d.prec >= 0 {
		return nil
	}

	basic, _ := t.Underlying().(*types.Basic)
	if basic == nil {
		return nil
	}
	entry, ok := knowledge.Entries[basic.Kind()]
	if !ok {
		return nil
	}

	width := max(d.width, 0)
	if width > numfmt.MaxWidth {
		return nil
	}

	switch {
	case base == 10 && d.zero && width > 0:
		return nil // fmt pads with zeros, numfmt with spaces
	case base == 10 && entry.Signed && width > 0:
		return nil // fmt pads before the sign, numfmt after it
	case base != 10 && entry.Signed:
		return nil // fmt keeps the sign, numfmt prints the bit pattern
	case base != 10 && width > 0 && !d.zero:
		return nil // fmt pads with spaces, numfmt with zeros
	}

	op := numfmtcall.Integer{
		Func:  entry.Func,
		Base:  base,
		Width: width,
	}
	if param := types.Typ[entry.Param]; !types.Identical(t, param) {
		op.Cast = param.Name()
	}

	return transform.Numfmt{Op: op}
}

// resolveTransformationForFVerb only accepts constant arguments: numfmt rounds
// half-up and spells special values differently, so the output is compared
// with fmt's before a rewrite is offered.
func resolveTransformationForFVerb(tv types.TypeAndValue, d directive) transform.Transformation {
	if d.zero || d.width >= 0 {
		return nil
	}
	if tv.Value == nil {
		return nil
	}

	basic, _ := tv.Type.Underlying().(*types.Basic)
	if basic == nil {
		return nil
	}

	v, _ := constant.Float64Val(constant.ToFloat(tv.Value))

	var castToFloat64 bool

	switch basic.Kind() {
	case types.Float64:
		castToFloat64 = !types.Identical(tv.Type, types.Typ[types.Float64])
	case types.UntypedFloat:
		castToFloat64 = false
	case types.Float32:
		castToFloat64 = true
		v = float64(float32(v))
	default:
		return nil
	}

	frac := defaultFrac
	if d.prec >= 0 {
		frac = d.prec
	}
	if frac > numfmt.MaxFrac || !floatMatchesFmt(v, frac) {
		return nil
	}

	return transform.Numfmt{Op: numfmtcall.Float{
		Frac:          frac,
		CastToFloat64: castToFloat64,
	}}
}

// floatMatchesFmt reports whether numfmt.Float prints v with frac digits
// exactly as fmt's %.<frac>f does.
func floatMatchesFmt(v float64, frac int) bool {
	return numfmt.Float(v, 0, uint8(frac)).String() == strconv.FormatFloat(v, 'f', frac, 64)
}

func constructResult(analyzed analyzedSprintfCall) (ast.Expr, bool, bool) {
	if len(analyzed.args) == 0 {
		return nil, false, false
	}

	if len(analyzed.args) == 1 {
		arg := analyzed.args[0]

		head := analyzed.originalText[:arg.position[0]]
		tail := analyzed.originalText[arg.position[1]:]

		if head == "" && tail == "" {
			newVal, addedNumfmt := transformValue(arg.value, arg.transformation)

			return newVal, addedNumfmt, true
		}
	}

	res := &ast.BinaryExpr{
		Op: token.ADD,
	}

	var (
		cursor      int
		addedNumfmt bool
	)

	for _, arg := range analyzed.args {
		head := analyzed.originalText[cursor:arg.position[0]]
		if head != "" {
			res = addExprToSum(res, stringLit(head))
		}

		newValueExpr, usesNumfmt := transformValue(arg.value, arg.transformation)
		if usesNumfmt {
			addedNumfmt = true
		}

		res = addExprToSum(res, newValueExpr)

		cursor = arg.position[1]
	}

	if cursor < len(analyzed.originalText) {
		res = addExprToSum(res, stringLit(analyzed.originalText[cursor:]))
	}

	return res, addedNumfmt, true
}

// stringLit quotes literal format text, collapsing "%%" escapes.
func stringLit(text string) *ast.BasicLit {
	return &ast.BasicLit{
		Kind:  token.STRING,
		Value: strconv.Quote(strings.ReplaceAll(text, "%%", "%")),
	}
}

func addExprToSum(base *ast.BinaryExpr, e ast.Expr) *ast.BinaryExpr {
	if base.X == nil {
		base.X = e
	} else if base.Y == nil {
		base.Y = e
	} else {
		base = &ast.BinaryExpr{X: base, Y: e, Op: token.ADD}
	}

	return base
}

func transformValue(value ast.Expr, t transform.Transformation) (ast.Expr, bool) {
	value = astcopy.Expr(value)

	switch tt := t.(type) {
	case transform.NoOp:
		return value, false
	case transform.CallStringMethod:
		return callMethod(value, "String"), false
	case transform.CallErrorMethod:
		return callMethod(value, "Error"), false
	case transform.ConvertToString:
		return convert(value, "string"), false
	case transform.Numfmt:
		return transformValueWithNumfmt(value, tt), true
	default:
		panic("unknown transformation")
	}
}

func transformValueWithNumfmt(value ast.Expr, tNumfmt transform.Numfmt) ast.Expr {
	switch op := tNumfmt.Op.(type) {

	case numfmtcall.Integer:
		if op.Cast != "" {
			value = convert(value, op.Cast)
		}

		return callMethod(numfmtCall(op.Func, value, intLit(op.Base), intLit(op.Width)), "String")

	case numfmtcall.Float:
		if op.CastToFloat64 {
			value = convert(value, "float64")
		}

		return callMethod(numfmtCall("Float", value, intLit(0), intLit(op.Frac)), "String")

	default:
		panic("unknown numfmt operation")
	}
}

func numfmtCall(name string, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{
		Fun: &ast.SelectorExpr{
			X:   &ast.Ident{Name: "numfmt"},
			Sel: &ast.Ident{Name: name},
		},
		Args: args,
	}
}

func callMethod(value ast.Expr, name string) ast.Expr {
	switch value.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.CallExpr, *ast.IndexExpr, *ast.ParenExpr, *ast.CompositeLit:
	default:
		value = &ast.ParenExpr{X: value}
	}

	return &ast.CallExpr{
		Fun: &ast.SelectorExpr{
			X:   value,
			Sel: &ast.Ident{Name: name},
		},
	}
}

func convert(value ast.Expr, typeName string) ast.Expr {
	return &ast.CallExpr{Fun: &ast.Ident{Name: typeName}, Args: []ast.Expr{value}}
}

func intLit(n int) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(n)}
}
