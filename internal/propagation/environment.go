package propagation

import (
	"zokrates/internal/perrors"
	"zokrates/internal/typedast"
)

// Environment is the mutable mapping from assignees to the literal
// expressions currently known to be bound to them. It lives for exactly
// the duration of one function's traversal and is never observed
// outside that traversal, so iteration order never leaks into
// observable output — lookups are always by key, never by range over
// the map.
type Environment struct {
	bindings map[string]typedast.Expr
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]typedast.Expr)}
}

// lookup returns the literal expression bound to key, if any.
func (e *Environment) lookup(key string) (typedast.Expr, bool) {
	v, ok := e.bindings[key]
	return v, ok
}

// bind inserts or overwrites the binding for key. A second definition
// of an already-bound identifier simply overwrites: upstream passes are
// assumed to supply SSA-like single assignment, so this is a plain
// upsert, not a conflict check.
func (e *Environment) bind(key string, expr typedast.Expr) {
	e.bindings[key] = expr
}

// invalidate removes any binding for key.
func (e *Environment) invalidate(key string) {
	delete(e.bindings, key)
}

// updateArrayElement replaces the element at index in the literal array
// currently bound to varKey with newElem. If varKey is unbound, this is
// a no-op (no binding is created) — an element write alone is never
// enough to resurrect an opaque array as constant. If varKey is bound to
// something other than a field-array literal, that is a TypeInvariant:
// every bound identifier is guaranteed fully literal, so a non-array
// binding here means a prior pass produced an ill-typed assignee.
func (e *Environment) updateArrayElement(varKey string, index int, newElem *typedast.FieldNumber) error {
	bound, ok := e.bindings[varKey]
	if !ok {
		return nil
	}

	arr, ok := bound.(*typedast.ArrayValue)
	if !ok {
		return perrors.TypeInvariantf(varKey, "constant entry for an array assignee is not an array literal, found %T", bound)
	}

	if index < 0 || index >= arr.Size {
		return perrors.OutOfBoundsf(varKey, "index %d out of bounds for array of size %d", index, arr.Size)
	}

	updated := make([]typedast.FieldExpr, len(arr.Elements))
	copy(updated, arr.Elements)
	updated[index] = newElem

	e.bindings[varKey] = &typedast.ArrayValue{Size: arr.Size, Elements: updated}
	return nil
}
