package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "E1"}
	wrapped := Wrap(base, "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestCauseUnwrapsStack(t *testing.T) {
	base := New("root")
	assert.Equal(t, base, Cause(Wrapf(WithStack(base), "ctx %d", 1)))
	assert.True(t, Is(Join(New("other"), Wrap(base, "x")), base))
}
