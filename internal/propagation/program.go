package propagation

import "zokrates/internal/typedast"

// Propagate runs the propagation pass over an entire program. Functions
// are traversed in source order; each gets its own fresh environment,
// and no state is shared between them — inter-procedural propagation
// stays out of scope. Each function sees every already-propagated
// function that precedes it in the program.
func Propagate(p *typedast.Program) (*typedast.Program, error) {
	functions := make([]*typedast.Function, 0, len(p.Functions))

	for _, fn := range p.Functions {
		propagated, err := PropagateFunction(fn, functions)
		if err != nil {
			return nil, err
		}
		functions = append(functions, propagated)
	}

	return &typedast.Program{Functions: functions}, nil
}
