package object

import "fmt"

// NameError covers undefined constants, undefined methods referenced by
// alias/undef/instance_method, private constants referenced strictly,
// invalid class-variable names, and deprecate_constant/private_constant/
// public_constant on a missing constant.
type NameError struct{ Message string }

func (e *NameError) Error() string { return e.Message }

func NewNameError(format string, args ...any) *NameError {
	return &NameError{Message: fmt.Sprintf(format, args...)}
}

// TypeError covers define_method given a non-Proc/Method/UnboundMethod,
// module_function on a class, binding an UnboundMethod to a non-subclass,
// and does_include_module on a non-module.
type TypeError struct{ Message string }

func (e *TypeError) Error() string { return e.Message }

func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// ArgumentError covers module_eval without a block and define_method
// with neither a body nor a block.
type ArgumentError struct{ Message string }

func (e *ArgumentError) Error() string { return e.Message }

func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}

// LocalJumpError covers module_exec without a block.
type LocalJumpError struct{ Message string }

func (e *LocalJumpError) Error() string { return e.Message }

func NewLocalJumpError(msg string) *LocalJumpError {
	return &LocalJumpError{Message: msg}
}
