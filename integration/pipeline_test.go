// Package integration exercises the lexer, parser, and object model
// together, the way gomib's integration package cross-checks a full
// pipeline rather than one package in isolation.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langrt/langrt/internal/ast"
	"github.com/langrt/langrt/internal/object"
	"github.com/langrt/langrt/internal/parser"
)

// TestDefRegistersAsObjectModelMethod parses a def and feeds its name/
// params/body into the object model the way an evaluator would, proving
// the two packages' data shapes actually fit together.
func TestDefRegistersAsObjectModelMethod(t *testing.T) {
	block, err := parser.New([]byte("def greet(name)\n  name\nend"), nil).Parse()
	require.NoError(t, err)
	require.Len(t, block.Nodes, 1)

	def, ok := block.Nodes[0].(*ast.Def)
	require.True(t, ok)
	require.Equal(t, "greet", def.Name)
	require.Equal(t, []string{"name"}, def.Params)

	root := object.NewModule(object.KindModule, nil)
	c := object.NewNamedModule(object.KindClass, "Greeter", root)
	closure := &object.Closure{Env: object.NewEnv(nil), Params: def.Params, Body: def.Body}
	c.DefineMethod(def.Name, nil, closure, len(def.Params))

	res := c.Find("greet")
	require.True(t, res.Found)
	require.True(t, res.Info.Defined)
	require.Same(t, closure, res.Info.Method.Closure)
}

// TestParenLessCallFeedsMethodDispatch exercises scenario 5 end to end: a
// paren-less call's method name is exactly what find_method would look
// up to dispatch it.
func TestParenLessCallFeedsMethodDispatch(t *testing.T) {
	block, err := parser.New([]byte("puts 1, 2, 3"), nil).Parse()
	require.NoError(t, err)

	call, ok := block.Nodes[0].(*ast.Call)
	require.True(t, ok)

	root := object.NewModule(object.KindModule, nil)
	kernel := object.NewNamedModule(object.KindModule, "Kernel", root)
	var captured []object.Value
	kernel.DefineMethod(call.Method, func(env *object.Env, self object.Value, args []object.Value, block object.Block) (object.Value, error) {
		captured = args
		return nil, nil
	}, nil, len(call.Args))

	res := kernel.Find(call.Method)
	require.True(t, res.Found)
	_, err = res.Info.Method.Native(nil, kernel, []object.Value{1, 2, 3}, nil)
	require.NoError(t, err)
	require.Equal(t, []object.Value{1, 2, 3}, captured)
}

// TestUndefMaskingSurvivesAliasing combines alias and undef_method: an
// alias taken before undef_method still resolves, but the original name
// is masked afterward (P5 and P6 interacting through one module).
func TestUndefMaskingSurvivesAliasing(t *testing.T) {
	root := object.NewModule(object.KindModule, nil)
	c := object.NewNamedModule(object.KindClass, "C", root)
	c.DefineMethod("greet", func(env *object.Env, self object.Value, args []object.Value, block object.Block) (object.Value, error) {
		return "hi", nil
	}, nil, 0)

	require.NoError(t, c.Alias("salute", "greet", false))
	require.NoError(t, c.UndefMethod("greet"))

	greetRes := c.Find("greet")
	require.True(t, greetRes.Found)
	require.False(t, greetRes.Info.Defined)

	saluteRes := c.Find("salute")
	require.True(t, saluteRes.Found)
	require.True(t, saluteRes.Info.Defined)
}
