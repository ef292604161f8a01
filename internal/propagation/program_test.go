package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zokrates/internal/typedast"
)

// buildFoldableFunction returns a function whose body is entirely
// reducible: a constant definition, a redundant assertion, and a return
// of the now-known value. Running propagation over it drops the
// definition and leaves the folded assertion and the folded return.
func buildFoldableFunction() *typedast.Function {
	return &typedast.Function{
		Name:        "main",
		Params:      nil,
		ReturnKinds: []typedast.VariableKind{typedast.FieldKind},
		Statements: []typedast.Stmt{
			&typedast.DefStmt{
				Assignee: &typedast.IdentAssignee{Var: ident("a")},
				Expr:     &typedast.FieldBinary{Op: typedast.OpAdd, Left: num(2), Right: num(3)},
			},
			&typedast.CondStmt{
				Left:  &typedast.FieldIdentifier{Name: "a"},
				Right: num(5),
			},
			&typedast.ReturnStmt{Values: []typedast.Expr{&typedast.FieldIdentifier{Name: "a"}}},
		},
	}
}

func TestPropagateFunctionFoldsConstantBody(t *testing.T) {
	fn := buildFoldableFunction()

	out, err := PropagateFunction(fn, nil)
	require.NoError(t, err)
	require.Len(t, out.Statements, 2)

	cond, ok := out.Statements[0].(*typedast.CondStmt)
	require.True(t, ok)
	assert.Equal(t, num(5), cond.Left)
	assert.Equal(t, num(5), cond.Right)

	ret, ok := out.Statements[1].(*typedast.ReturnStmt)
	require.True(t, ok)
	assert.Equal(t, num(5), ret.Values[0])
}

func TestPropagateFunctionPreservesSignature(t *testing.T) {
	fn := buildFoldableFunction()
	fn.Params = []typedast.Variable{ident("p")}

	out, err := PropagateFunction(fn, nil)
	require.NoError(t, err)
	assert.Equal(t, fn.Name, out.Name)
	assert.Equal(t, fn.Params, out.Params)
	assert.Equal(t, fn.ReturnKinds, out.ReturnKinds)
}

func TestPropagateFunctionIsIdempotent(t *testing.T) {
	fn := buildFoldableFunction()

	once, err := PropagateFunction(fn, nil)
	require.NoError(t, err)

	twice, err := PropagateFunction(once, nil)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestPropagateProgramKeepsFunctionsIndependent(t *testing.T) {
	first := buildFoldableFunction()
	first.Name = "helper"

	second := &typedast.Function{
		Name:        "caller",
		ReturnKinds: []typedast.VariableKind{typedast.FieldKind},
		Statements: []typedast.Stmt{
			&typedast.ReturnStmt{Values: []typedast.Expr{
				&typedast.FieldCall{FuncID: "helper", Args: nil},
			}},
		},
	}

	out, err := Propagate(&typedast.Program{Functions: []*typedast.Function{first, second}})
	require.NoError(t, err)
	require.Len(t, out.Functions, 2)

	// The call to "helper" in the second function is left opaque: it is
	// never inlined, and its identity and arity survive unchanged.
	ret := out.Functions[1].Statements[0].(*typedast.ReturnStmt)
	call, ok := ret.Values[0].(*typedast.FieldCall)
	require.True(t, ok)
	assert.Equal(t, "helper", call.FuncID)
	assert.Len(t, call.Args, 0)
}

func TestPropagateFunctionLeavesPartiallyConstantArrayUnbound(t *testing.T) {
	fn := &typedast.Function{
		Name: "withArray",
		Statements: []typedast.Stmt{
			&typedast.DefStmt{
				Assignee: &typedast.IdentAssignee{Var: typedast.ArrayVariable("arr", 2)},
				Expr: &typedast.ArrayValue{Size: 2, Elements: []typedast.FieldExpr{
					num(1),
					&typedast.FieldIdentifier{Name: "unknown"},
				}},
			},
			&typedast.ReturnStmt{Values: []typedast.Expr{
				&typedast.ArrayIdentifier{Name: "arr", Size: 2},
			}},
		},
	}

	out, err := PropagateFunction(fn, nil)
	require.NoError(t, err)
	require.Len(t, out.Statements, 2)

	def, ok := out.Statements[0].(*typedast.DefStmt)
	require.True(t, ok)
	arr, ok := def.Expr.(*typedast.ArrayValue)
	require.True(t, ok)
	assert.Equal(t, 2, arr.Size)

	ret := out.Statements[1].(*typedast.ReturnStmt)
	// Since "arr" was never bound as a full literal, the identifier in
	// the return statement is left as an opaque reference.
	_, stillIdentifier := ret.Values[0].(*typedast.ArrayIdentifier)
	assert.True(t, stillIdentifier)
}
