// Package object implements the module/class object model: inclusion
// chains, method lookup with super-style resumption, constant lookup
// across lexical and inheritance scopes, class-variable propagation,
// method visibility, aliasing, and singleton-class naming.
//
// The evaluator, lexer, and garbage collector are external collaborators.
// This package never walks an AST body itself; a Closure's Body is opaque
// to everything except the evaluator that runs it.
package object

import "github.com/langrt/langrt/internal/ast"

// Value stands in for whatever runtime value type the evaluator uses
// (integers, strings, module references, user objects, ...). The object
// model only ever needs to store, compare, and hand these back; it never
// interprets them.
type Value = any

// Env is a lexical scope: local bindings plus a link to the enclosing
// scope and, when running as a block/method body, the caller's scope.
// Module.CapturedEnv is a frozen snapshot of the Env in effect when a
// module's body was first entered, re-used whenever the body runs again
// (module_eval, reopening a class).
type Env struct {
	Outer  *Env
	Caller *Env
	Locals map[string]Value
}

// NewEnv returns a child scope of outer with no caller set.
func NewEnv(outer *Env) *Env {
	return &Env{Outer: outer, Locals: make(map[string]Value)}
}

// Get resolves name by walking Outer links, the way a closure sees the
// scope it captured.
func (e *Env) Get(name string) (Value, bool) {
	for s := e; s != nil; s = s.Outer {
		if v, ok := s.Locals[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in this scope only; it does not search Outer.
func (e *Env) Set(name string, v Value) {
	e.Locals[name] = v
}

// Block is whatever the evaluator passes for `{ ... }`/`do ... end` —
// module_eval, module_exec, and define_method's block form all just need
// to invoke it with a receiver.
type Block interface {
	Call(self Value, args ...Value) (Value, error)
}

// Closure is a user-defined method or block body: the lexical
// environment captured at definition time plus the AST the evaluator
// will walk to run it.
type Closure struct {
	Env    *Env
	Params []string
	Body   *ast.Block
}
