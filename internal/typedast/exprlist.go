package typedast

import (
	"fmt"
	"strings"
)

// ExprList is an expression that yields more than one value, used on the
// right-hand side of a MultiDefStmt. Presently only a function call.
type ExprList interface {
	fmt.Stringer
	isExprList()
}

// CallList is a call to a function expected to return multiple values.
type CallList struct {
	FuncID      string
	Args        []Expr
	ResultKinds []VariableKind
}

func (*CallList) isExprList() {}

func (c *CallList) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.FuncID, strings.Join(args, ", "))
}
