package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	two := FromInt64(2)
	three := FromInt64(3)

	assert.True(t, Equal(Add(two, three), FromInt64(5)))
	assert.True(t, Equal(Sub(three, two), FromInt64(1)))
	assert.True(t, Equal(Mul(three, two), FromInt64(6)))

	quotient, err := Div(FromInt64(6), two)
	require.NoError(t, err)
	assert.True(t, Equal(quotient, three))

	assert.True(t, Equal(Pow(two, three), FromInt64(8)))
}

func TestDivByZero(t *testing.T) {
	_, err := Div(FromInt64(1), Zero())
	assert.Error(t, err)
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, Cmp(FromInt64(2), FromInt64(4)))
	assert.Equal(t, 0, Cmp(FromInt64(4), FromInt64(4)))
	assert.Equal(t, 1, Cmp(FromInt64(5), FromInt64(4)))
}

func TestIntRoundTrip(t *testing.T) {
	n, err := FromInt64(42).Int()
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "42", FromInt64(42).String())
}

func TestFromDecimalString(t *testing.T) {
	e, err := FromDecimalString("123456789")
	require.NoError(t, err)
	assert.Equal(t, "123456789", e.String())

	_, err = FromDecimalString("not-a-number")
	assert.Error(t, err)
}
