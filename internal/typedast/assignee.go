package typedast

import "fmt"

// Assignee is a write target: either a whole variable or an indexed
// array element. Assignees are used as environment keys via Key().
type Assignee interface {
	fmt.Stringer
	isAssignee()
	// Key renders a canonical environment-key string. For an
	// ElemAssignee this is only meaningful when Index is itself a
	// literal FieldNumber; the propagation pass never binds a key built
	// from a non-literal index (see Environment.updateArrayElement).
	Key() string
}

// IdentAssignee is a write to a whole variable.
type IdentAssignee struct {
	Var Variable
}

func (a *IdentAssignee) isAssignee()  {}
func (a *IdentAssignee) Key() string  { return a.Var.Key() }
func (a *IdentAssignee) String() string { return a.Var.Name }

// ElemAssignee is a write to a single array element, base[index].
type ElemAssignee struct {
	Base  Assignee
	Index FieldExpr
}

func (a *ElemAssignee) isAssignee() {}

func (a *ElemAssignee) Key() string {
	if n, ok := a.Index.(*FieldNumber); ok {
		return fmt.Sprintf("%s[%s]", a.Base.Key(), n.Value.String())
	}
	return fmt.Sprintf("%s[?]", a.Base.Key())
}

func (a *ElemAssignee) String() string {
	return fmt.Sprintf("%s[%s]", a.Base, a.Index)
}

// IdentVar returns the Variable at the root of an assignee, unwrapping
// any ElemAssignee layers. Every assignee base is an IdentAssignee per
// spec invariant 2.
func IdentVar(a Assignee) (Variable, bool) {
	switch t := a.(type) {
	case *IdentAssignee:
		return t.Var, true
	case *ElemAssignee:
		return IdentVar(t.Base)
	default:
		return Variable{}, false
	}
}
