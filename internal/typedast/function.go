package typedast

import (
	"fmt"
	"strings"
)

// Function is a typed function signature plus its ordered statements.
type Function struct {
	Name        string
	Params      []Variable
	ReturnKinds []VariableKind
	Statements  []Stmt
}

func (f *Function) String() string {
	var b strings.Builder
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = fmt.Sprintf("%s %s", p.Kind, p.Name)
	}
	fmt.Fprintf(&b, "def %s(%s):\n", f.Name, strings.Join(params, ", "))
	for _, s := range f.Statements {
		fmt.Fprintf(&b, "    %s\n", s)
	}
	return b.String()
}

// Program is an ordered sequence of functions; the first is the entry
// point.
type Program struct {
	Functions []*Function
}

func (p *Program) String() string {
	var b strings.Builder
	for _, f := range p.Functions {
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	return b.String()
}
