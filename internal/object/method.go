package object

// NativeFn is a builtin method body, the Go-function equivalent of a
// Method's native function pointer.
type NativeFn func(env *Env, self Value, args []Value, block Block) (Value, error)

// Method is a named, owned method body: either native or a closure
// capturing its defining lexical scope and AST.
type Method struct {
	Name    string
	Owner   *Module
	Native  NativeFn // nil for a closure-bodied method
	Closure *Closure // nil for a native method
	Arity   int
}

// Call invokes whichever body this Method carries. The evaluator is
// responsible for actually walking Closure.Body; this package has no
// AST interpreter of its own, so a closure-bodied Method without an
// evaluator-supplied runner cannot be called directly through Call.
func (m *Method) Call(env *Env, self Value, args []Value, block Block, run func(*Closure, *Env, Value, []Value, Block) (Value, error)) (Value, error) {
	if m.Native != nil {
		return m.Native(env, self, args, block)
	}
	return run(m.Closure, env, self, args, block)
}

// MethodInfo is the tagged union {Defined(vis, method), Undefined(vis)}.
// The zero value is the "not found" sentinel (Present is false); this is
// distinct from an explicit Undefined entry, which masks inherited
// definitions along the lookup chain.
type MethodInfo struct {
	Present    bool
	Defined    bool
	Visibility Visibility
	Method     *Method
}

// DefinedInfo builds a MethodInfo for a method table entry that has a body.
func DefinedInfo(vis Visibility, m *Method) MethodInfo {
	return MethodInfo{Present: true, Defined: true, Visibility: vis, Method: m}
}

// UndefinedInfo builds the sentinel written by undef_method: present in
// the table, but with no body, so lookup stops here instead of falling
// through to an ancestor.
func UndefinedInfo(vis Visibility) MethodInfo {
	return MethodInfo{Present: true, Defined: false, Visibility: vis}
}
