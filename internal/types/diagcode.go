package types

// Diagnostic codes emitted by the object model. Centralizing these prevents
// silent breakage from typos in string literals scattered across call sites.
const (
	// DiagDeprecatedConstant is reported when const_find resolves a constant
	// whose Deprecated flag is set.
	DiagDeprecatedConstant = "deprecated-constant"
)
