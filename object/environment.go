// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Implements the memory environment (symbol table) for the interpreter.
//          It handles variable storage, lexical scoping chains, and shadowing logic.
// ==============================================================================================

package object

type Environment struct {
	store map[string]Object // Storage for the current scope
	outer *Environment      // Link to the enclosing (outer) scope
}

// NewEnvironment creates a fresh global environment.
func NewEnvironment() *Environment {
	s := make(map[string]Object)
	return &Environment{store: s, outer: nil}
}

// NewEnclosedEnvironment creates a new local scope linked to an outer scope.
// Only function application creates one of these; plain blocks and for-loops
// reuse the enclosing environment (see evaluator.Eval).
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get retrieves a value associated with a name. It searches the current
// scope first, then recursively checks outer scopes, and finally the
// process-wide builtins table.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if ok {
		return obj, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return GetBuiltin(name)
}

// Set stores a value in the CURRENT scope only. Whether called for a `let`
// binding or an `=` assignment, it never climbs the parent chain: assigning
// to a name already bound in an outer scope creates a new binding in the
// current scope rather than mutating the outer one. This is the observed,
// preserved behavior of the reference implementation.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Unset removes a binding from the current scope only. Used to drop a
// `for` loop's parameter binding once the loop completes.
func (e *Environment) Unset(name string) {
	delete(e.store, name)
}
