package perrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	err := OutOfBoundsf("a[3]", "index %d >= size %d", 3, 2)
	assert.Equal(t, Kind("out-of-bounds"), err.Kind)
	assert.Contains(t, err.Error(), "index 3 >= size 2")
	assert.Contains(t, err.Error(), "a[3]")
}

func TestReporterFormat(t *testing.T) {
	r := NewReporter()
	err := LoopNotUnrolledf("for i in 0..3", "for loop reached propagation pass")
	formatted := r.Format(err)

	assert.Contains(t, formatted, "loop-not-unrolled")
	assert.Contains(t, formatted, "for loop reached propagation pass")
	assert.Contains(t, formatted, "for i in 0..3")
}
