package propagation

import (
	"zokrates/internal/perrors"
	"zokrates/internal/typedast"
)

// propagateStmt rewrites a single statement. A nil result (with a nil
// error) means the statement was fully absorbed into the environment
// and must be dropped from the output.
func propagateStmt(s typedast.Stmt, env *Environment) (typedast.Stmt, error) {
	switch st := s.(type) {
	case *typedast.DeclStmt:
		return st, nil

	case *typedast.ReturnStmt:
		values := make([]typedast.Expr, len(st.Values))
		for i, v := range st.Values {
			pv, err := propagateExpr(v, env)
			if err != nil {
				return nil, err
			}
			values[i] = pv
		}
		return &typedast.ReturnStmt{Values: values}, nil

	case *typedast.CondStmt:
		left, err := propagateField(st.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := propagateField(st.Right, env)
		if err != nil {
			return nil, err
		}
		// Even when both sides fold to unequal literals, the assertion
		// is left in place for the prover to observe rather than
		// rejected here.
		return &typedast.CondStmt{Left: left, Right: right}, nil

	case *typedast.MultiDefStmt:
		list, err := propagateExprList(st.List, env)
		if err != nil {
			return nil, err
		}
		// Multi-valued call results are opaque: no binding is inserted
		// for any of st.Vars.
		return &typedast.MultiDefStmt{Vars: st.Vars, List: list}, nil

	case *typedast.ForStmt:
		return nil, perrors.LoopNotUnrolledf(st.String(), "for loops must be unrolled before the propagation pass runs")

	case *typedast.DefStmt:
		return propagateDefinition(st, env)

	default:
		return nil, perrors.TypeInvariantf(s.String(), "unrecognized statement %T", s)
	}
}

// propagateDefinition implements the Definition(assignee, expr) cases:
// a whole-variable write either binds a literal or emits a rewritten
// definition, while an array-element write either mutates an
// already-literal array in place or conservatively invalidates it.
func propagateDefinition(st *typedast.DefStmt, env *Environment) (typedast.Stmt, error) {
	switch assignee := st.Assignee.(type) {
	case *typedast.IdentAssignee:
		return propagateWholeVariableDefinition(assignee, st.Expr, env)
	case *typedast.ElemAssignee:
		return propagateArrayElementDefinition(assignee, st.Expr, env)
	default:
		return nil, perrors.TypeInvariantf(st.String(), "unexpected assignee nesting %T", st.Assignee)
	}
}

func propagateWholeVariableDefinition(assignee *typedast.IdentAssignee, expr typedast.Expr, env *Environment) (typedast.Stmt, error) {
	value, err := propagateExpr(expr, env)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case *typedast.BoolValue, *typedast.FieldNumber:
		env.bind(assignee.Key(), value)
		return nil, nil

	case *typedast.ArrayValue:
		if v.IsLiteralArray() {
			env.bind(assignee.Key(), v)
			return nil, nil
		}
		// A partially constant array must never be stored in the
		// environment; emit it but do not bind.
		return &typedast.DefStmt{Assignee: assignee, Expr: v}, nil

	default:
		// Any other shape: emit, but neither bind a new constant nor
		// invalidate a prior one for this identifier.
		return &typedast.DefStmt{Assignee: assignee, Expr: value}, nil
	}
}

func propagateArrayElementDefinition(assignee *typedast.ElemAssignee, expr typedast.Expr, env *Environment) (typedast.Stmt, error) {
	base, ok := assignee.Base.(*typedast.IdentAssignee)
	if !ok {
		return nil, perrors.TypeInvariantf(assignee.String(), "array-element assignee base must be an identifier, found %T", assignee.Base)
	}

	index, err := propagateField(assignee.Index, env)
	if err != nil {
		return nil, err
	}
	value, err := propagateExpr(expr, env)
	if err != nil {
		return nil, err
	}

	indexLiteral, indexIsLiteral := index.(*typedast.FieldNumber)
	valueLiteral, valueIsLiteral := value.(*typedast.FieldNumber)

	if indexIsLiteral && valueIsLiteral {
		i, err := indexLiteral.Value.Int()
		if err != nil {
			return nil, perrors.OutOfBoundsf(assignee.String(), "array index is not a valid non-negative integer: %s", err)
		}
		if err := env.updateArrayElement(base.Key(), i, valueLiteral); err != nil {
			return nil, err
		}
		return nil, nil
	}

	// A non-literal element write conservatively invalidates the whole
	// array: propagation never supports partially constant arrays.
	env.invalidate(base.Key())
	return &typedast.DefStmt{
		Assignee: &typedast.ElemAssignee{Base: base, Index: index},
		Expr:     value,
	}, nil
}

func propagateExprList(list typedast.ExprList, env *Environment) (typedast.ExprList, error) {
	switch l := list.(type) {
	case *typedast.CallList:
		args := make([]typedast.Expr, len(l.Args))
		for i, a := range l.Args {
			pa, err := propagateExpr(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = pa
		}
		return &typedast.CallList{FuncID: l.FuncID, Args: args, ResultKinds: l.ResultKinds}, nil
	default:
		return nil, perrors.TypeInvariantf(list.String(), "unrecognized expression list %T", list)
	}
}
