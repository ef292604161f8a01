package propagation

import "zokrates/internal/typedast"

// Pass is a named, self-describing program transformation, mirroring a
// named, chainable optimization-pass pipeline idiom. Only one pass is
// registered today; the interface exists so a caller wiring a future
// pass (e.g. a post-flattening inter-procedural propagation, or a
// dead-store elimination pass) can slot it into the same Pipeline
// without this package's public shape changing.
type Pass interface {
	Name() string
	Description() string
	Apply(p *typedast.Program) (*typedast.Program, error)
}

// ConstantPropagation is the Pass wrapping Propagate.
type ConstantPropagation struct{}

func (ConstantPropagation) Name() string { return "constant propagation" }

func (ConstantPropagation) Description() string {
	return "eliminates literal-valued definitions, folds arithmetic and comparisons over literals, and resolves known array indices"
}

func (ConstantPropagation) Apply(p *typedast.Program) (*typedast.Program, error) {
	return Propagate(p)
}

// Pipeline runs an ordered sequence of passes over a program.
type Pipeline struct {
	passes []Pass
}

// NewPipeline creates a pipeline running ConstantPropagation.
func NewPipeline() *Pipeline {
	return &Pipeline{passes: []Pass{ConstantPropagation{}}}
}

// AddPass appends pass to the end of the pipeline.
func (pl *Pipeline) AddPass(pass Pass) {
	pl.passes = append(pl.passes, pass)
}

// Run applies every pass in order, threading each pass's output into
// the next.
func (pl *Pipeline) Run(p *typedast.Program) (*typedast.Program, error) {
	current := p
	for _, pass := range pl.passes {
		next, err := pass.Apply(current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
