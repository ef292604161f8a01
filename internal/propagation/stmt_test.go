package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zokrates/internal/typedast"
)

func ident(name string) typedast.Variable { return typedast.FieldVariable(name) }

func TestLiteralDefinitionIsDroppedAndBound(t *testing.T) {
	env := NewEnvironment()
	st := &typedast.DefStmt{
		Assignee: &typedast.IdentAssignee{Var: ident("a")},
		Expr:     &typedast.FieldBinary{Op: typedast.OpAdd, Left: num(2), Right: num(3)},
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	assert.Nil(t, out)

	bound, ok := env.lookup(ident("a").Key())
	require.True(t, ok)
	assert.Equal(t, num(5), bound)
}

func TestNonLiteralDefinitionIsEmittedAndNotBound(t *testing.T) {
	env := NewEnvironment()
	st := &typedast.DefStmt{
		Assignee: &typedast.IdentAssignee{Var: ident("a")},
		Expr:     &typedast.FieldIdentifier{Name: "unknown"},
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	require.NotNil(t, out)
	_, ok := env.lookup(ident("a").Key())
	assert.False(t, ok)
}

func TestLiteralArrayElementDefinitionIsAlwaysDropped(t *testing.T) {
	// Scenario (g): even when the base array was never previously bound,
	// a literal index/value element write vanishes from the output
	// without creating any binding in the environment — matching
	// the always-drop behavior of the original propagation pass.
	env := NewEnvironment()
	arrVar := typedast.ArrayVariable("arr", 3)
	st := &typedast.DefStmt{
		Assignee: &typedast.ElemAssignee{
			Base:  &typedast.IdentAssignee{Var: arrVar},
			Index: num(1),
		},
		Expr: num(42),
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, ok := env.lookup(arrVar.Key())
	assert.False(t, ok)
}

func TestLiteralArrayElementDefinitionUpdatesBoundArray(t *testing.T) {
	env := NewEnvironment()
	arrVar := typedast.ArrayVariable("arr", 3)
	env.bind(arrVar.Key(), &typedast.ArrayValue{Size: 3, Elements: []typedast.FieldExpr{num(1), num(2), num(3)}})

	st := &typedast.DefStmt{
		Assignee: &typedast.ElemAssignee{
			Base:  &typedast.IdentAssignee{Var: arrVar},
			Index: num(1),
		},
		Expr: num(99),
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	assert.Nil(t, out)

	bound, ok := env.lookup(arrVar.Key())
	require.True(t, ok)
	arr, ok := bound.(*typedast.ArrayValue)
	require.True(t, ok)
	assert.Equal(t, num(99), arr.Elements[1])
	assert.Equal(t, num(1), arr.Elements[0])
}

func TestNonLiteralArrayElementDefinitionInvalidatesArray(t *testing.T) {
	// Scenario (h): a previously known array, once written with a
	// non-literal element, must no longer be treated as constant.
	env := NewEnvironment()
	arrVar := typedast.ArrayVariable("arr", 2)
	env.bind(arrVar.Key(), &typedast.ArrayValue{Size: 2, Elements: []typedast.FieldExpr{num(1), num(2)}})

	st := &typedast.DefStmt{
		Assignee: &typedast.ElemAssignee{
			Base:  &typedast.IdentAssignee{Var: arrVar},
			Index: num(0),
		},
		Expr: &typedast.FieldIdentifier{Name: "unknown"},
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	require.NotNil(t, out)

	_, ok := env.lookup(arrVar.Key())
	assert.False(t, ok)
}

func TestCondStmtPropagatesBothSidesAndIsRetained(t *testing.T) {
	env := NewEnvironment()
	env.bind(ident("a").Key(), num(2))

	st := &typedast.CondStmt{
		Left:  &typedast.FieldIdentifier{Name: "a"},
		Right: num(3),
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	require.NotNil(t, out)

	cond, ok := out.(*typedast.CondStmt)
	require.True(t, ok)
	assert.Equal(t, num(2), cond.Left)
	assert.Equal(t, num(3), cond.Right)
}

func TestForStmtIsRejected(t *testing.T) {
	env := NewEnvironment()
	st := &typedast.ForStmt{Var: ident("i"), Start: num(0), End: num(3)}

	_, err := propagateStmt(st, env)
	assert.Error(t, err)
}

func TestMultiDefStmtNeverBindsResults(t *testing.T) {
	env := NewEnvironment()
	st := &typedast.MultiDefStmt{
		Vars: []typedast.Variable{ident("x"), ident("y")},
		List: &typedast.CallList{FuncID: "f", Args: []typedast.Expr{num(1)}, ResultKinds: []typedast.VariableKind{typedast.FieldKind, typedast.FieldKind}},
	}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	require.NotNil(t, out)

	_, xBound := env.lookup(ident("x").Key())
	_, yBound := env.lookup(ident("y").Key())
	assert.False(t, xBound)
	assert.False(t, yBound)
}

func TestDeclStmtPassesThroughUnchanged(t *testing.T) {
	env := NewEnvironment()
	st := &typedast.DeclStmt{Var: ident("z")}

	out, err := propagateStmt(st, env)
	require.NoError(t, err)
	assert.Equal(t, st, out)
}
