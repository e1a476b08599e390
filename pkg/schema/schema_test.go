package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Context accessors ---

func TestGet(t *testing.T) {
	c := Context{"name": "alice", "score": 700, "ratio": 0.25}

	t.Run("present with matching type", func(t *testing.T) {
		assert.Equal(t, "alice", Get(c, "name", ""))
		assert.Equal(t, 700, Get(c, "score", 0))
	})

	t.Run("missing key yields default", func(t *testing.T) {
		assert.Equal(t, "none", Get(c, "absent", "none"))
		assert.Equal(t, 42, Get(c, "absent", 42))
	})

	t.Run("type mismatch yields default", func(t *testing.T) {
		assert.Equal(t, 0, Get(c, "name", 0))
		assert.Equal(t, "", Get(c, "score", ""))
	})

	t.Run("nil context yields default", func(t *testing.T) {
		assert.Equal(t, 7, Get(nil, "k", 7))
	})
}

func TestGetNumber(t *testing.T) {
	c := Context{
		"int":     700,
		"int64":   int64(700),
		"float64": 700.0,
		"float32": float32(700),
		"text":    "700",
	}

	t.Run("coerces numeric types", func(t *testing.T) {
		assert.Equal(t, 700.0, GetNumber(c, "int", 0))
		assert.Equal(t, 700.0, GetNumber(c, "int64", 0))
		assert.Equal(t, 700.0, GetNumber(c, "float64", 0))
		assert.Equal(t, 700.0, GetNumber(c, "float32", 0))
	})

	t.Run("non-numeric yields default", func(t *testing.T) {
		assert.Equal(t, -1.0, GetNumber(c, "text", -1))
	})

	t.Run("missing key yields default", func(t *testing.T) {
		assert.Equal(t, 1.0, GetNumber(c, "absent", 1))
	})
}

// --- Result ---

func TestResult(t *testing.T) {
	t.Run("outcome is present", func(t *testing.T) {
		r := Outcome("APPROVED")
		assert.True(t, r.Present())
		assert.Equal(t, "APPROVED", r.Value())
		assert.Equal(t, "APPROVED", r.String())
	})

	t.Run("nil outcome distinguishable from no result", func(t *testing.T) {
		assert.True(t, Outcome(nil).Present())
		assert.False(t, NoResult().Present())
	})

	t.Run("zero value is no result", func(t *testing.T) {
		var r Result
		assert.False(t, r.Present())
		assert.Nil(t, r.Value())
		assert.Equal(t, "<no result>", r.String())
	})
}

// --- Errors ---

func TestTreeError(t *testing.T) {
	t.Run("message format", func(t *testing.T) {
		err := NewError(ErrCodeValidation, "bad input")
		assert.Equal(t, "[VALIDATION_ERROR] bad input", err.Error())
	})

	t.Run("node in message", func(t *testing.T) {
		err := NewErrorf(ErrCodeCycleDetected, "depth %d exceeded", 10).WithNode("loop")
		assert.Equal(t, "[CYCLE_DETECTED] node loop: depth 10 exceeded", err.Error())
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewError(ErrCodeExecution, "failed").WithCause(cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("details attached", func(t *testing.T) {
		err := NewError(ErrCodeExecution, "failed").
			WithDetails(map[string]any{"expression": "x > 1"})
		require.NotNil(t, err.Details)
		assert.Equal(t, "x > 1", err.Details["expression"])
	})
}
