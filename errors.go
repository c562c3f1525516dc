// errors.go: the closed runtime error taxonomy.
//
// Every evaluation failure is an *EvalError with a Kind from the closed set
// below; callers can switch on Kind instead of matching message text. Parse
// and lex failures surface unchanged as *ParseError / *LexError.
package risp

import "fmt"

// ErrorKind classifies a runtime failure.
type ErrorKind int

const (
	ErrUnboundSymbol   ErrorKind = iota // symbol has no binding
	ErrUnboundFunction                  // call-head symbol has no binding
	ErrNotCallable                      // call-head symbol bound to a non-lambda
	ErrArity                            // operand or parameter count mismatch
	ErrType                             // operand type mismatch
	ErrMalformedForm                    // structurally invalid special form
	ErrDivisionByZero                   // integer / or % with zero divisor
)

// EvalError is a runtime failure. Which fields carry data depends on Kind:
// Name holds the offending symbol, operator, or form name; Want/Got hold
// arity counts; Left/Right hold rendered operands for operator type errors;
// Detail holds free-form context for type and malformed-form errors.
type EvalError struct {
	Kind   ErrorKind
	Name   string
	Want   int
	Got    int
	Left   string
	Right  string
	Detail string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrUnboundSymbol:
		return "unbound symbol: " + e.Name
	case ErrUnboundFunction:
		return "unbound function: " + e.Name
	case ErrNotCallable:
		return "not a lambda: " + e.Name
	case ErrArity:
		return fmt.Sprintf("invalid number of arguments for %s: want %d, got %d", e.Name, e.Want, e.Got)
	case ErrType:
		if e.Left != "" || e.Right != "" {
			return fmt.Sprintf("invalid types for %s operator: %s %s", e.Name, e.Left, e.Right)
		}
		return e.Detail
	case ErrMalformedForm:
		return e.Detail
	case ErrDivisionByZero:
		return fmt.Sprintf("division by zero: %s %s %s", e.Left, e.Name, e.Right)
	default:
		return "evaluation error"
	}
}
