// object.go: the tagged Object union used for both AST forms and runtime values.
//
// The same representation serves two roles: the parser produces Objects as
// unevaluated forms, and the evaluator produces Objects as results. ListData
// is kept distinct from List so that evaluated list values are never
// re-interpreted as forms.
package risp

import (
	"fmt"
	"strconv"
	"strings"
)

// ObjectTag enumerates every kind an Object may hold.
// The tag determines which Go type Object.Data carries.
type ObjectTag int

const (
	TVoid     ObjectTag = iota // no payload
	TInteger                   // int64
	TFloat                     // float64
	TBool                      // bool
	TString                    // string
	TSymbol                    // string (name to resolve)
	TKeyword                   // string (define/list/print/lambda/map/filter/reduce)
	TIf                        // no payload; the `if` head marker
	TBinaryOp                  // string (+ - * / % < > = != & |)
	TLambda                    // *Lambda
	TList                      // []Object (form or sequence result)
	TListData                  // []Object (evaluated list value)
)

// Object is the universal carrier for forms and values.
type Object struct {
	Tag  ObjectTag
	Data interface{}
}

// Lambda is a callable value. Env is the environment captured at definition
// time; applications extend it, never the caller's environment.
type Lambda struct {
	Params []string
	Body   []Object
	Env    *Env
}

// Void is the absence of a value (result of define and print).
var Void = Object{Tag: TVoid}

// If is the marker form emitted by the parser for an `if` head.
var If = Object{Tag: TIf}

// Constructors.
func Int(n int64) Object       { return Object{Tag: TInteger, Data: n} }
func Float(f float64) Object   { return Object{Tag: TFloat, Data: f} }
func Bool(b bool) Object       { return Object{Tag: TBool, Data: b} }
func Str(s string) Object      { return Object{Tag: TString, Data: s} }
func Sym(name string) Object   { return Object{Tag: TSymbol, Data: name} }
func Kw(name string) Object    { return Object{Tag: TKeyword, Data: name} }
func Op(name string) Object    { return Object{Tag: TBinaryOp, Data: name} }
func LambdaVal(l *Lambda) Object { return Object{Tag: TLambda, Data: l} }

// ListOf builds an unevaluated/sequence List form.
func ListOf(items ...Object) Object {
	if items == nil {
		items = []Object{}
	}
	return Object{Tag: TList, Data: items}
}

// ListDataOf builds an evaluated list value.
func ListDataOf(items ...Object) Object {
	if items == nil {
		items = []Object{}
	}
	return Object{Tag: TListData, Data: items}
}

// Items returns the element slice of a List or ListData.
func (o Object) Items() []Object { return o.Data.([]Object) }

// String renders the display form used by print, the REPL, and error
// messages. Atoms render as their literal text, strings are quoted, lists
// render as space-separated parenthesized sequences.
func (o Object) String() string {
	switch o.Tag {
	case TVoid:
		return "Void"
	case TInteger:
		return strconv.FormatInt(o.Data.(int64), 10)
	case TFloat:
		return strconv.FormatFloat(o.Data.(float64), 'g', -1, 64)
	case TBool:
		return strconv.FormatBool(o.Data.(bool))
	case TString:
		return "\"" + o.Data.(string) + "\""
	case TSymbol, TKeyword, TBinaryOp:
		return o.Data.(string)
	case TIf:
		return "if"
	case TLambda:
		l := o.Data.(*Lambda)
		var b strings.Builder
		b.WriteString("Lambda(")
		for _, p := range l.Params {
			b.WriteString(p)
			b.WriteByte(' ')
		}
		b.WriteByte(')')
		for _, expr := range l.Body {
			b.WriteByte(' ')
			b.WriteString(expr.String())
		}
		return b.String()
	case TList, TListData:
		items := o.Data.([]Object)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = it.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("<unknown tag %d>", o.Tag)
	}
}

// Equal reports structural equality. Two lambdas are equal only if their
// parameters and body match and they captured the identical environment.
func Equal(a, b Object) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TVoid, TIf:
		return true
	case TLambda:
		la, lb := a.Data.(*Lambda), b.Data.(*Lambda)
		if la.Env != lb.Env || len(la.Params) != len(lb.Params) || len(la.Body) != len(lb.Body) {
			return false
		}
		for i := range la.Params {
			if la.Params[i] != lb.Params[i] {
				return false
			}
		}
		for i := range la.Body {
			if !Equal(la.Body[i], lb.Body[i]) {
				return false
			}
		}
		return true
	case TList, TListData:
		xa, xb := a.Data.([]Object), b.Data.([]Object)
		if len(xa) != len(xb) {
			return false
		}
		for i := range xa {
			if !Equal(xa[i], xb[i]) {
				return false
			}
		}
		return true
	default:
		return a.Data == b.Data
	}
}
