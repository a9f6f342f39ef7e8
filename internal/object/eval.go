package object

// EvalBody re-enters m's captured lexical environment to run fn (e.g.
// re-opening a class body), resetting method_visibility and
// module_function_mode to their defaults afterward regardless of the
// body's own behavior.
func (m *Module) EvalBody(caller *Env, fn func(*Env, Value) (Value, error)) (Value, error) {
	bodyEnv := NewEnv(m.CapturedEnv)
	bodyEnv.Caller = caller
	result, err := fn(bodyEnv, m)
	m.MethodVisibility = Public
	m.ModuleFunctionMode = false
	return result, err
}

// ModuleEval requires a block, runs it with self bound to m, and
// restores (rather than resets) the prior visibility/module_function
// state afterward — a reopened module_eval body should not permanently
// change what `private` means for code outside the block.
func (m *Module) ModuleEval(block Block) (Value, error) {
	if block == nil {
		return nil, NewArgumentError("module_eval requires a block")
	}
	oldVisibility := m.MethodVisibility
	oldModuleFunction := m.ModuleFunctionMode
	result, err := block.Call(m)
	m.MethodVisibility = oldVisibility
	m.ModuleFunctionMode = oldModuleFunction
	return result, err
}

// ModuleExec requires a block (raising LocalJumpError otherwise) and
// runs it with self and args, restoring the prior visibility/
// module_function state afterward the same way ModuleEval does.
func (m *Module) ModuleExec(block Block, args ...Value) (Value, error) {
	if block == nil {
		return nil, NewLocalJumpError("no block given (yield)")
	}
	oldVisibility := m.MethodVisibility
	oldModuleFunction := m.ModuleFunctionMode
	result, err := block.Call(m, args...)
	m.MethodVisibility = oldVisibility
	m.ModuleFunctionMode = oldModuleFunction
	return result, err
}
