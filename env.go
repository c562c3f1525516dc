package risp

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward; Define always binds in the current frame, shadowing without
// mutating any outer binding. A frame's parent is fixed at creation. Frames
// are shared by pointer: a frame stays alive as long as any lambda closure
// or child frame still references it.
type Env struct {
	parent *Env
	table  map[string]Object
}

// NewEnv creates a new frame with the given parent (nil for the root).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Object)}
}

// Define binds name to v in the current frame.
func (e *Env) Define(name string, v Object) {
	e.table[name] = v
}

// Get retrieves the nearest visible binding for name, walking outward to
// the root frame.
func (e *Env) Get(name string) (Object, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, true
		}
	}
	return Object{}, false
}
