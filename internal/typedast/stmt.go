package typedast

import (
	"fmt"
	"strings"
)

// Stmt is a single statement in a function body.
type Stmt interface {
	fmt.Stringer
	isStmt()
}

// DeclStmt declares a variable without giving it a value.
type DeclStmt struct {
	Var Variable
}

// DefStmt assigns expr to assignee.
type DefStmt struct {
	Assignee Assignee
	Expr     Expr
}

// CondStmt asserts that two field expressions are equal. It is a
// constraint assertion, not a branch: the pass propagates into both
// sides but never short-circuits based on the result.
type CondStmt struct {
	Left, Right FieldExpr
}

// ReturnStmt returns an ordered sequence of expressions from a function.
type ReturnStmt struct {
	Values []Expr
}

// MultiDefStmt assigns the results of a multi-valued call to several
// variables at once. The call is opaque: its results are never bound
// into the propagation environment.
type MultiDefStmt struct {
	Vars []Variable
	List ExprList
}

// ForStmt must never appear in a program reaching this pass; for loops
// are unrolled upstream. Its presence in typedast exists solely so the
// pass can detect and report the invariant violation.
type ForStmt struct {
	Var   Variable
	Start FieldExpr
	End   FieldExpr
	Body  []Stmt
}

func (*DeclStmt) isStmt()     {}
func (*DefStmt) isStmt()      {}
func (*CondStmt) isStmt()     {}
func (*ReturnStmt) isStmt()   {}
func (*MultiDefStmt) isStmt() {}
func (*ForStmt) isStmt()      {}

func (s *DeclStmt) String() string { return fmt.Sprintf("decl %s", s.Var) }
func (s *DefStmt) String() string  { return fmt.Sprintf("%s = %s", s.Assignee, s.Expr) }
func (s *CondStmt) String() string { return fmt.Sprintf("assert %s == %s", s.Left, s.Right) }
func (s *ReturnStmt) String() string {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("return %s", strings.Join(parts, ", "))
}
func (s *MultiDefStmt) String() string {
	names := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		names[i] = v.Name
	}
	return fmt.Sprintf("%s = %s", strings.Join(names, ", "), s.List)
}
func (s *ForStmt) String() string { return fmt.Sprintf("for %s in %s..%s { ... }", s.Var, s.Start, s.End) }
