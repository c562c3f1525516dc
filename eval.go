// eval.go: the evaluator core.
//
// EvalForm is an iterative loop over a mutable (currentForm, currentEnv)
// pair rather than naive recursion. Two positions re-enter the loop instead
// of recursing: the chosen branch of an `if`, and the body of a lambda
// applied through a symbol head. That gives constant stack usage for self-
// and mutual tail recursion reached through those positions. Argument
// evaluation, combinator bodies, and non-tail nested calls still recurse.
package risp

import (
	"io"
	"os"
)

// Version is the interpreter version reported by the CLI.
const Version = "0.1.0"

// Interpreter owns a session's global environment and the output sink that
// `print` writes to.
type Interpreter struct {
	Global *Env
	Out    io.Writer
}

// NewInterpreter returns an interpreter with an empty global frame, printing
// to stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewEnv(nil), Out: os.Stdout}
}

// EvalSource parses src into exactly one root form and evaluates it in the
// global environment. Parse and lex errors surface unchanged.
func (ip *Interpreter) EvalSource(src string) (Object, error) {
	form, err := Parse(src)
	if err != nil {
		return Void, err
	}
	return ip.EvalForm(form, ip.Global)
}

// EvalForm evaluates a pre-parsed form against env.
func (ip *Interpreter) EvalForm(form Object, env *Env) (Object, error) {
	current, cenv := form, env
	for {
		switch current.Tag {
		case TList:
			items := current.Items()
			if len(items) == 0 {
				return ListOf(), nil
			}
			head := items[0]
			switch head.Tag {
			case TBinaryOp:
				return ip.evalBinaryOp(items, cenv)
			case TKeyword:
				return ip.evalKeyword(items, cenv)
			case TIf:
				if len(items) != 4 {
					return Void, &EvalError{Kind: ErrArity, Name: "if", Want: 3, Got: len(items) - 1}
				}
				cond, err := ip.EvalForm(items[1], cenv)
				if err != nil {
					return Void, err
				}
				if cond.Tag != TBool {
					return Void, &EvalError{Kind: ErrType, Detail: "if condition must be a boolean, got " + cond.String()}
				}
				// Tail position: loop on the chosen branch.
				if cond.Data.(bool) {
					current = items[2]
				} else {
					current = items[3]
				}
				continue
			case TSymbol:
				name := head.Data.(string)
				fn, ok := cenv.Get(name)
				if !ok {
					return Void, &EvalError{Kind: ErrUnboundFunction, Name: name}
				}
				if fn.Tag != TLambda {
					return Void, &EvalError{Kind: ErrNotCallable, Name: name}
				}
				lam := fn.Data.(*Lambda)
				if len(items)-1 < len(lam.Params) {
					return Void, &EvalError{Kind: ErrArity, Name: name, Want: len(lam.Params), Got: len(items) - 1}
				}
				// Arguments evaluate in the caller's environment; the body
				// runs in a fresh child of the captured closure environment.
				// Surplus arguments are ignored.
				next := NewEnv(lam.Env)
				for i, param := range lam.Params {
					v, err := ip.EvalForm(items[i+1], cenv)
					if err != nil {
						return Void, err
					}
					next.Define(param, v)
				}
				// Tail position: loop on the body.
				current = Object{Tag: TList, Data: lam.Body}
				cenv = next
				continue
			default:
				// Implicit sequence: evaluate every element in the same
				// environment, drop Void results, return the rest as a List.
				results := make([]Object, 0, len(items))
				for _, it := range items {
					v, err := ip.EvalForm(it, cenv)
					if err != nil {
						return Void, err
					}
					if v.Tag != TVoid {
						results = append(results, v)
					}
				}
				return Object{Tag: TList, Data: results}, nil
			}
		case TSymbol:
			return evalSymbol(current.Data.(string), cenv)
		default:
			// Atoms, lambdas, and ListData evaluate to themselves.
			return current, nil
		}
	}
}

// evalSymbol resolves the reserved literals before consulting the
// environment chain.
func evalSymbol(name string, env *Env) (Object, error) {
	switch name {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "nil":
		return Void, nil
	}
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	return Void, &EvalError{Kind: ErrUnboundSymbol, Name: name}
}
