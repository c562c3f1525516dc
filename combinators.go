// combinators.go: the map/filter/reduce higher-order forms.
//
// Each combinator binds already-evaluated elements into a fresh child frame
// of the lambda's closure environment and evaluates the body once per
// element. Bodies run through EvalForm and therefore consume call-stack
// depth; only direct symbol-head application is trampolined.
package risp

// combinatorLambda checks that v is a lambda with exactly wantParams
// parameters, for use by formName.
func combinatorLambda(formName string, v Object, wantParams int) (*Lambda, error) {
	if v.Tag != TLambda {
		return nil, &EvalError{Kind: ErrType, Detail: "not a lambda while evaluating " + formName + ": " + v.String()}
	}
	lam := v.Data.(*Lambda)
	if len(lam.Params) != wantParams {
		return nil, &EvalError{Kind: ErrArity, Name: formName + " lambda", Want: wantParams, Got: len(lam.Params)}
	}
	return lam, nil
}

// combinatorColl checks that v is an evaluated list.
func combinatorColl(formName string, v Object) ([]Object, error) {
	if v.Tag != TListData {
		return nil, &EvalError{Kind: ErrType, Detail: "collection argument to " + formName + " must be a list, got " + v.String()}
	}
	return v.Items(), nil
}

func (ip *Interpreter) evalMap(items []Object, env *Env) (Object, error) {
	if len(items) != 3 {
		return Void, &EvalError{Kind: ErrArity, Name: "map", Want: 2, Got: len(items) - 1}
	}
	fn, err := ip.EvalForm(items[1], env)
	if err != nil {
		return Void, err
	}
	coll, err := ip.EvalForm(items[2], env)
	if err != nil {
		return Void, err
	}
	lam, err := combinatorLambda("map", fn, 1)
	if err != nil {
		return Void, err
	}
	elems, err := combinatorColl("map", coll)
	if err != nil {
		return Void, err
	}

	results := make([]Object, 0, len(elems))
	for _, elem := range elems {
		child := NewEnv(lam.Env)
		child.Define(lam.Params[0], elem)
		v, err := ip.EvalForm(Object{Tag: TList, Data: lam.Body}, child)
		if err != nil {
			return Void, err
		}
		results = append(results, v)
	}
	return Object{Tag: TListData, Data: results}, nil
}

func (ip *Interpreter) evalFilter(items []Object, env *Env) (Object, error) {
	if len(items) != 3 {
		return Void, &EvalError{Kind: ErrArity, Name: "filter", Want: 2, Got: len(items) - 1}
	}
	fn, err := ip.EvalForm(items[1], env)
	if err != nil {
		return Void, err
	}
	coll, err := ip.EvalForm(items[2], env)
	if err != nil {
		return Void, err
	}
	lam, err := combinatorLambda("filter", fn, 1)
	if err != nil {
		return Void, err
	}
	elems, err := combinatorColl("filter", coll)
	if err != nil {
		return Void, err
	}

	results := make([]Object, 0, len(elems))
	for _, elem := range elems {
		child := NewEnv(lam.Env)
		child.Define(lam.Params[0], elem)
		v, err := ip.EvalForm(Object{Tag: TList, Data: lam.Body}, child)
		if err != nil {
			return Void, err
		}
		// The original element is kept, not the predicate's result. Any
		// non-true result excludes the element; it is not an error.
		if v.Tag == TBool && v.Data.(bool) {
			results = append(results, elem)
		}
	}
	return Object{Tag: TListData, Data: results}, nil
}

func (ip *Interpreter) evalReduce(items []Object, env *Env) (Object, error) {
	if len(items) != 4 {
		return Void, &EvalError{Kind: ErrArity, Name: "reduce", Want: 3, Got: len(items) - 1}
	}
	fn, err := ip.EvalForm(items[1], env)
	if err != nil {
		return Void, err
	}
	acc, err := ip.EvalForm(items[2], env)
	if err != nil {
		return Void, err
	}
	coll, err := ip.EvalForm(items[3], env)
	if err != nil {
		return Void, err
	}
	lam, err := combinatorLambda("reduce", fn, 2)
	if err != nil {
		return Void, err
	}
	elems, err := combinatorColl("reduce", coll)
	if err != nil {
		return Void, err
	}

	for _, elem := range elems {
		child := NewEnv(lam.Env)
		child.Define(lam.Params[0], acc)
		child.Define(lam.Params[1], elem)
		acc, err = ip.EvalForm(Object{Tag: TList, Data: lam.Body}, child)
		if err != nil {
			return Void, err
		}
	}
	return acc, nil
}
