// binop.go: type-directed binary-operator dispatch.
//
// Both operands are always evaluated before dispatch; & and | do not
// short-circuit. Integer op Integer stays Integer (truncating / and %); any
// Integer/Float mix promotes to Float. Strings support + (concatenation),
// < > (lexicographic), and = !=. Note the deliberate gap carried over from
// the reference semantics: = has no Float case and falls through to a type
// error.
package risp

import "math"

func (ip *Interpreter) evalBinaryOp(items []Object, env *Env) (Object, error) {
	op := items[0].Data.(string)
	if len(items) != 3 {
		return Void, &EvalError{Kind: ErrArity, Name: op, Want: 2, Got: len(items) - 1}
	}
	left, err := ip.EvalForm(items[1], env)
	if err != nil {
		return Void, err
	}
	right, err := ip.EvalForm(items[2], env)
	if err != nil {
		return Void, err
	}

	switch op {
	case "+":
		if left.Tag == TString && right.Tag == TString {
			return Str(left.Data.(string) + right.Data.(string)), nil
		}
		return arith(op, left, right)
	case "-", "*":
		return arith(op, left, right)
	case "/", "%":
		if left.Tag == TInteger && right.Tag == TInteger && right.Data.(int64) == 0 {
			return Void, &EvalError{Kind: ErrDivisionByZero, Name: op, Left: left.String(), Right: right.String()}
		}
		return arith(op, left, right)
	case "<", ">":
		return compare(op, left, right)
	case "=":
		switch {
		case left.Tag == TInteger && right.Tag == TInteger:
			return Bool(left.Data.(int64) == right.Data.(int64)), nil
		case left.Tag == TString && right.Tag == TString:
			return Bool(left.Data.(string) == right.Data.(string)), nil
		}
		return Void, typeErr(op, left, right)
	case "!=":
		if left.Tag == TString && right.Tag == TString {
			return Bool(left.Data.(string) != right.Data.(string)), nil
		}
		if li, lf, lok := numeric(left); lok {
			if ri, rf, rok := numeric(right); rok {
				if left.Tag == TInteger && right.Tag == TInteger {
					return Bool(li != ri), nil
				}
				return Bool(lf != rf), nil
			}
		}
		return Void, typeErr(op, left, right)
	case "&":
		if left.Tag == TBool && right.Tag == TBool {
			return Bool(left.Data.(bool) && right.Data.(bool)), nil
		}
		return Void, typeErr(op, left, right)
	case "|":
		if left.Tag == TBool && right.Tag == TBool {
			return Bool(left.Data.(bool) || right.Data.(bool)), nil
		}
		return Void, typeErr(op, left, right)
	default:
		return Void, &EvalError{Kind: ErrMalformedForm, Detail: "invalid infix operator: " + op}
	}
}

func typeErr(op string, left, right Object) *EvalError {
	return &EvalError{Kind: ErrType, Name: op, Left: left.String(), Right: right.String()}
}

// numeric extracts the payload of an Integer or Float operand, giving both
// the integer view and the promoted float view.
func numeric(o Object) (i int64, f float64, ok bool) {
	switch o.Tag {
	case TInteger:
		n := o.Data.(int64)
		return n, float64(n), true
	case TFloat:
		f := o.Data.(float64)
		return 0, f, true
	}
	return 0, 0, false
}

// arith applies + - * / % with Integer/Float promotion. Integer results
// stay Integer; any Float operand promotes the whole operation.
func arith(op string, left, right Object) (Object, error) {
	li, lf, lok := numeric(left)
	ri, rf, rok := numeric(right)
	if !lok || !rok {
		return Void, typeErr(op, left, right)
	}

	if left.Tag == TInteger && right.Tag == TInteger {
		switch op {
		case "+":
			return Int(li + ri), nil
		case "-":
			return Int(li - ri), nil
		case "*":
			return Int(li * ri), nil
		case "/":
			return Int(li / ri), nil
		case "%":
			return Int(li % ri), nil
		}
	}
	switch op {
	case "+":
		return Float(lf + rf), nil
	case "-":
		return Float(lf - rf), nil
	case "*":
		return Float(lf * rf), nil
	case "/":
		return Float(lf / rf), nil
	case "%":
		return Float(math.Mod(lf, rf)), nil
	}
	return Void, &EvalError{Kind: ErrMalformedForm, Detail: "invalid infix operator: " + op}
}

// compare applies < and > with numeric promotion and lexicographic string
// ordering.
func compare(op string, left, right Object) (Object, error) {
	if left.Tag == TString && right.Tag == TString {
		ls, rs := left.Data.(string), right.Data.(string)
		if op == "<" {
			return Bool(ls < rs), nil
		}
		return Bool(ls > rs), nil
	}
	li, lf, lok := numeric(left)
	ri, rf, rok := numeric(right)
	if !lok || !rok {
		return Void, typeErr(op, left, right)
	}
	if left.Tag == TInteger && right.Tag == TInteger {
		if op == "<" {
			return Bool(li < ri), nil
		}
		return Bool(li > ri), nil
	}
	if op == "<" {
		return Bool(lf < rf), nil
	}
	return Bool(lf > rf), nil
}
