package propagation

import (
	"fmt"

	"zokrates/internal/field"
	"zokrates/internal/perrors"
	"zokrates/internal/typedast"
)

// propagateExpr dispatches to the sort-specific propagator for e and
// returns the result as the Expr umbrella, for use in heterogeneous
// positions (call arguments, return values).
func propagateExpr(e typedast.Expr, env *Environment) (typedast.Expr, error) {
	switch t := e.(type) {
	case typedast.FieldExpr:
		return propagateField(t, env)
	case typedast.BoolExpr:
		return propagateBool(t, env)
	case typedast.ArrayExpr:
		return propagateArray(t, env)
	default:
		return nil, perrors.TypeInvariantf(e.String(), "expression %T is neither field, boolean, nor array shaped", e)
	}
}

// propagateField rewrites a field-element expression, folding any
// sub-expression whose operands are all literals.
func propagateField(e typedast.FieldExpr, env *Environment) (typedast.FieldExpr, error) {
	switch expr := e.(type) {
	case *typedast.FieldNumber:
		return expr, nil

	case *typedast.FieldIdentifier:
		key := typedast.FieldVariable(expr.Name).Key()
		bound, ok := env.lookup(key)
		if !ok {
			return expr, nil
		}
		n, ok := bound.(*typedast.FieldNumber)
		if !ok {
			return nil, perrors.TypeInvariantf(expr.Name, "constant stored for a field-element identifier is not a field literal, found %T", bound)
		}
		return &typedast.FieldNumber{Value: n.Value}, nil

	case *typedast.FieldBinary:
		left, err := propagateField(expr.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := propagateField(expr.Right, env)
		if err != nil {
			return nil, err
		}

		ln, lok := left.(*typedast.FieldNumber)
		rn, rok := right.(*typedast.FieldNumber)
		if lok && rok {
			folded, err := foldBinary(expr.Op, ln.Value, rn.Value)
			if err != nil {
				return nil, err
			}
			return &typedast.FieldNumber{Value: folded}, nil
		}
		return &typedast.FieldBinary{Op: expr.Op, Left: left, Right: right}, nil

	case *typedast.FieldIfElse:
		// Both arms are propagated unconditionally, even though only one
		// survives when the condition folds to a literal: this preserves
		// the side-free propagation of the branch that gets discarded.
		then, err := propagateField(expr.Then, env)
		if err != nil {
			return nil, err
		}
		alt, err := propagateField(expr.Else, env)
		if err != nil {
			return nil, err
		}
		cond, err := propagateBool(expr.Cond, env)
		if err != nil {
			return nil, err
		}

		if bv, ok := cond.(*typedast.BoolValue); ok {
			if bv.Value {
				return then, nil
			}
			return alt, nil
		}
		return &typedast.FieldIfElse{Cond: cond, Then: then, Else: alt}, nil

	case *typedast.FieldCall:
		// Propagation through function calls is handled after
		// flattening; only the arguments are propagated here.
		args := make([]typedast.Expr, len(expr.Args))
		for i, a := range expr.Args {
			pa, err := propagateExpr(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = pa
		}
		return &typedast.FieldCall{FuncID: expr.FuncID, Args: args}, nil

	case *typedast.FieldSelect:
		arr, err := propagateArray(expr.Array, env)
		if err != nil {
			return nil, err
		}
		idx, err := propagateField(expr.Index, env)
		if err != nil {
			return nil, err
		}

		switch a := arr.(type) {
		case *typedast.ArrayValue:
			if n, ok := idx.(*typedast.FieldNumber); ok {
				i, err := n.Value.Int()
				if err != nil {
					return nil, perrors.OutOfBoundsf(expr.String(), "select index is not a valid array index: %s", err)
				}
				if i >= a.Size {
					return nil, perrors.OutOfBoundsf(expr.String(), "index %d out of bounds for array of size %d", i, a.Size)
				}
				return a.Elements[i], nil
			}
		case *typedast.ArrayIdentifier:
			if n, ok := idx.(*typedast.FieldNumber); ok {
				base := &typedast.IdentAssignee{Var: typedast.ArrayVariable(a.Name, a.Size)}
				elemKey := (&typedast.ElemAssignee{Base: base, Index: n}).Key()
				if bound, ok := env.lookup(elemKey); ok {
					if fe, ok := bound.(*typedast.FieldNumber); ok {
						return fe, nil
					}
				}
			}
		}
		return &typedast.FieldSelect{Array: arr, Index: idx}, nil

	default:
		return nil, perrors.TypeInvariantf(e.String(), "unrecognized field expression %T", e)
	}
}

// propagateBool rewrites a boolean expression, folding comparisons whose
// operands both fold to field literals.
func propagateBool(e typedast.BoolExpr, env *Environment) (typedast.BoolExpr, error) {
	switch expr := e.(type) {
	case *typedast.BoolValue:
		return expr, nil

	case *typedast.BoolIdentifier:
		key := typedast.BoolVariable(expr.Name).Key()
		bound, ok := env.lookup(key)
		if !ok {
			return expr, nil
		}
		v, ok := bound.(*typedast.BoolValue)
		if !ok {
			return nil, perrors.TypeInvariantf(expr.Name, "constant stored for a boolean identifier is not a boolean literal, found %T", bound)
		}
		return &typedast.BoolValue{Value: v.Value}, nil

	case *typedast.BoolCompare:
		left, err := propagateField(expr.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := propagateField(expr.Right, env)
		if err != nil {
			return nil, err
		}

		ln, lok := left.(*typedast.FieldNumber)
		rn, rok := right.(*typedast.FieldNumber)
		if lok && rok {
			return &typedast.BoolValue{Value: compare(expr.Op, ln.Value, rn.Value)}, nil
		}
		return &typedast.BoolCompare{Op: expr.Op, Left: left, Right: right}, nil

	default:
		return nil, perrors.TypeInvariantf(e.String(), "unrecognized boolean expression %T", e)
	}
}

// propagateArray rewrites a field-array expression.
func propagateArray(e typedast.ArrayExpr, env *Environment) (typedast.ArrayExpr, error) {
	switch expr := e.(type) {
	case *typedast.ArrayIdentifier:
		key := typedast.ArrayVariable(expr.Name, expr.Size).Key()
		bound, ok := env.lookup(key)
		if !ok {
			return expr, nil
		}
		v, ok := bound.(*typedast.ArrayValue)
		if !ok {
			return nil, perrors.TypeInvariantf(expr.Name, "constant stored for an array identifier is not an array literal, found %T", bound)
		}
		elements := make([]typedast.FieldExpr, len(v.Elements))
		copy(elements, v.Elements)
		return &typedast.ArrayValue{Size: v.Size, Elements: elements}, nil

	case *typedast.ArrayValue:
		elements := make([]typedast.FieldExpr, len(expr.Elements))
		for i, el := range expr.Elements {
			pe, err := propagateField(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = pe
		}
		return &typedast.ArrayValue{Size: expr.Size, Elements: elements}, nil

	default:
		return nil, perrors.TypeInvariantf(e.String(), "unrecognized array expression %T", e)
	}
}

// foldBinary computes the field operation named by op over two literal
// operands.
func foldBinary(op typedast.BinOp, l, r field.Element) (field.Element, error) {
	switch op {
	case typedast.OpAdd:
		return field.Add(l, r), nil
	case typedast.OpSub:
		return field.Sub(l, r), nil
	case typedast.OpMul:
		return field.Mul(l, r), nil
	case typedast.OpDiv:
		q, err := field.Div(l, r)
		if err != nil {
			return field.Element{}, perrors.TypeInvariantf(fmt.Sprintf("%s / %s", l, r), "%s", err)
		}
		return q, nil
	case typedast.OpPow:
		return field.Pow(l, r), nil
	default:
		return field.Element{}, perrors.TypeInvariantf("", "unrecognized binary operator %v", op)
	}
}

// compare evaluates a comparison operator over two literal operands
// under the field's total ordering on integer representatives.
func compare(op typedast.CompareOp, l, r field.Element) bool {
	c := field.Cmp(l, r)
	switch op {
	case typedast.OpEq:
		return field.Equal(l, r)
	case typedast.OpLt:
		return c < 0
	case typedast.OpLe:
		return c <= 0
	case typedast.OpGt:
		return c > 0
	case typedast.OpGe:
		return c >= 0
	default:
		return false
	}
}
