// keywords.go: the define/lambda/list/print special forms.
package risp

import "fmt"

func (ip *Interpreter) evalKeyword(items []Object, env *Env) (Object, error) {
	switch items[0].Data.(string) {
	case "define":
		return ip.evalDefine(items, env)
	case "lambda":
		return evalLambdaForm(items, env)
	case "list":
		return ip.evalListData(items, env)
	case "print":
		return ip.evalPrint(items, env)
	case "map":
		return ip.evalMap(items, env)
	case "filter":
		return ip.evalFilter(items, env)
	case "reduce":
		return ip.evalReduce(items, env)
	default:
		return Void, &EvalError{Kind: ErrMalformedForm, Detail: "invalid keyword: " + items[0].String()}
	}
}

// evalDefine binds a name in the current frame. The binding lands in the
// very environment a lambda defined here captures, which is what makes
// self-recursive definitions resolvable.
func (ip *Interpreter) evalDefine(items []Object, env *Env) (Object, error) {
	if len(items) != 3 {
		return Void, &EvalError{Kind: ErrArity, Name: "define", Want: 2, Got: len(items) - 1}
	}
	if items[1].Tag != TSymbol {
		return Void, &EvalError{Kind: ErrMalformedForm, Detail: "define name must be a symbol, got " + items[1].String()}
	}
	v, err := ip.EvalForm(items[2], env)
	if err != nil {
		return Void, err
	}
	env.Define(items[1].Data.(string), v)
	return Void, nil
}

// evalLambdaForm builds a Lambda value without evaluating the body. The
// current environment is captured at definition time.
func evalLambdaForm(items []Object, env *Env) (Object, error) {
	if len(items) != 3 {
		return Void, &EvalError{Kind: ErrArity, Name: "lambda", Want: 2, Got: len(items) - 1}
	}
	if items[1].Tag != TList {
		return Void, &EvalError{Kind: ErrMalformedForm, Detail: "lambda parameter list must be a list, got " + items[1].String()}
	}
	paramForms := items[1].Items()
	params := make([]string, len(paramForms))
	for i, p := range paramForms {
		if p.Tag != TSymbol {
			return Void, &EvalError{Kind: ErrMalformedForm, Detail: "lambda parameter must be a symbol, got " + p.String()}
		}
		params[i] = p.Data.(string)
	}
	if items[2].Tag != TList {
		return Void, &EvalError{Kind: ErrMalformedForm, Detail: "lambda body must be a list, got " + items[2].String()}
	}
	return LambdaVal(&Lambda{Params: params, Body: items[2].Items(), Env: env}), nil
}

// evalListData evaluates every operand and wraps the results as ListData.
// Unlike the implicit sequence, Void results are kept.
func (ip *Interpreter) evalListData(items []Object, env *Env) (Object, error) {
	elems := make([]Object, 0, len(items)-1)
	for _, it := range items[1:] {
		v, err := ip.EvalForm(it, env)
		if err != nil {
			return Void, err
		}
		elems = append(elems, v)
	}
	return Object{Tag: TListData, Data: elems}, nil
}

// evalPrint writes each rendered operand followed by a space, then a
// newline, to the interpreter's output sink.
func (ip *Interpreter) evalPrint(items []Object, env *Env) (Object, error) {
	values := make([]Object, 0, len(items)-1)
	for _, it := range items[1:] {
		v, err := ip.EvalForm(it, env)
		if err != nil {
			return Void, err
		}
		values = append(values, v)
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(ip.Out, "%s ", v); err != nil {
			return Void, err
		}
	}
	if _, err := fmt.Fprintln(ip.Out); err != nil {
		return Void, err
	}
	return Void, nil
}
