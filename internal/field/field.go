// Package field implements the prime-field ground type that every
// value in a zokrates program ultimately bottoms out to: a field
// element, a boolean, or a fixed-length array of field elements.
//
// Rather than hand-rolling modular arithmetic, this wraps gnark-crypto's
// BN254 scalar field implementation, the same curve ZoKrates's reference
// proving backend targets.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a residue modulo the BN254 scalar field prime.
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromInt64 builds an element from a signed machine integer.
func FromInt64(v int64) Element {
	var e Element
	e.inner.SetInt64(v)
	return e
}

// FromDecimalString parses a base-10 integer literal into a field element,
// wrapping modulo the field prime.
func FromDecimalString(s string) (Element, error) {
	var e Element
	if _, err := e.inner.SetString(s); err != nil {
		return Element{}, fmt.Errorf("field: invalid decimal literal %q: %w", s, err)
	}
	return e, nil
}

// Add returns x+y mod p.
func Add(x, y Element) Element {
	var z Element
	z.inner.Add(&x.inner, &y.inner)
	return z
}

// Sub returns x-y mod p.
func Sub(x, y Element) Element {
	var z Element
	z.inner.Sub(&x.inner, &y.inner)
	return z
}

// Mul returns x*y mod p.
func Mul(x, y Element) Element {
	var z Element
	z.inner.Mul(&x.inner, &y.inner)
	return z
}

// Div returns x/y mod p. Division by zero has no field result, so a zero y
// yields an error instead.
func Div(x, y Element) (Element, error) {
	if y.IsZero() {
		return Element{}, fmt.Errorf("field: division by zero")
	}
	var z Element
	z.inner.Div(&x.inner, &y.inner)
	return z, nil
}

// Pow raises x to the integer named by exponent's canonical representative,
// per the field's contract that a Pow exponent is itself a field element
// whose integer interpretation is used directly.
func Pow(x, exponent Element) Element {
	var z Element
	z.inner.Exp(x.inner, exponent.BigInt())
	return z
}

// Cmp compares x and y under the field's total ordering over non-negative
// integer representatives: -1, 0 or 1 as x is less than, equal to, or
// greater than y.
func Cmp(x, y Element) int {
	return x.inner.Cmp(&y.inner)
}

// Equal reports whether x and y denote the same residue.
func Equal(x, y Element) bool {
	return x.inner.Equal(&y.inner)
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// BigInt returns x's canonical non-negative integer representative.
func (x Element) BigInt() *big.Int {
	var r big.Int
	x.inner.BigInt(&r)
	return &r
}

// Int returns x's representative as a non-negative int, for use as an array
// index or length. It errors if the representative does not fit in an int,
// which in practice means the index is out of range for any array this
// language can express.
func (x Element) Int() (int, error) {
	r := x.BigInt()
	if !r.IsInt64() {
		return 0, fmt.Errorf("field: representative %s does not fit a machine int", r.String())
	}
	n := r.Int64()
	if n < 0 {
		return 0, fmt.Errorf("field: negative representative %s is not a valid index", r.String())
	}
	return int(n), nil
}

// String renders x as a decimal string.
func (x Element) String() string {
	return x.inner.String()
}
