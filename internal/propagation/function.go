package propagation

import (
	"fmt"

	"zokrates/internal/typedast"
)

// PropagateFunction runs the propagation pass over a single function.
// It creates a fresh environment, consumes the function's statements in
// source order, and collects whatever each one emits, preserving the
// function's signature unchanged.
//
// preceding is the ordered slice of already-propagated functions that
// came before fn in the enclosing program. The pass does not currently
// look anything up in it — inter-procedural propagation is deliberately
// deferred to a later stage — but the parameter is threaded through so
// a future extension can use it without changing this function's
// signature.
func PropagateFunction(fn *typedast.Function, preceding []*typedast.Function) (*typedast.Function, error) {
	env := NewEnvironment()

	statements := make([]typedast.Stmt, 0, len(fn.Statements))
	for _, stmt := range fn.Statements {
		rewritten, err := propagateStmt(stmt, env)
		if err != nil {
			return nil, fmt.Errorf("propagating function %q: %w", fn.Name, err)
		}
		if rewritten != nil {
			statements = append(statements, rewritten)
		}
	}

	return &typedast.Function{
		Name:        fn.Name,
		Params:      fn.Params,
		ReturnKinds: fn.ReturnKinds,
		Statements:  statements,
	}, nil
}
