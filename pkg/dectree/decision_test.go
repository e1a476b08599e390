package dectree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

func truePred(ctx context.Context, c schema.Context) (bool, error)  { return true, nil }
func falsePred(ctx context.Context, c schema.Context) (bool, error) { return false, nil }

func keyAtLeast(key string, min float64) Predicate {
	return func(ctx context.Context, c schema.Context) (bool, error) {
		return schema.GetNumber(c, key, 0) >= min, nil
	}
}

func TestDecisionNode_ImplementsNode(t *testing.T) {
	var _ Node = (*DecisionNode)(nil)
}

func TestDecision_DispatchesTrueBranch(t *testing.T) {
	n := NewDecision("check", truePred,
		NewOutcome("yes", nil),
		NewOutcome("no", nil))

	result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
	require.NoError(t, err)
	assert.True(t, result.Present())
	assert.Equal(t, "yes", result.Value())
}

func TestDecision_DispatchesFalseBranch(t *testing.T) {
	n := NewDecision("check", falsePred,
		NewOutcome("yes", nil),
		NewOutcome("no", nil))

	result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
	require.NoError(t, err)
	assert.Equal(t, "no", result.Value())
}

func TestDecision_MissingBranchIsNoResult(t *testing.T) {
	t.Run("true branch absent", func(t *testing.T) {
		n := NewDecision("check", truePred, nil, NewOutcome("no", nil))

		result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
		require.NoError(t, err)
		assert.False(t, result.Present())
	})

	t.Run("false branch absent", func(t *testing.T) {
		n := NewDecision("check", falsePred, NewOutcome("yes", nil), nil)

		result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
		require.NoError(t, err)
		assert.False(t, result.Present())
	})

	t.Run("both branches absent", func(t *testing.T) {
		n := NewDecision("check", truePred, nil, nil)

		result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
		require.NoError(t, err)
		assert.False(t, result.Present())
	})
}

func TestDecision_PredicateReadsContext(t *testing.T) {
	n := NewDecision("credit", keyAtLeast("credit_score", 650),
		NewOutcome("ok", nil),
		NewOutcome("low", nil))

	t.Run("above threshold", func(t *testing.T) {
		result, err := n.Evaluate(context.Background(),
			NewEvaluation(schema.Context{"credit_score": 700}))
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Value())
	})

	t.Run("below threshold", func(t *testing.T) {
		result, err := n.Evaluate(context.Background(),
			NewEvaluation(schema.Context{"credit_score": 600}))
		require.NoError(t, err)
		assert.Equal(t, "low", result.Value())
	})

	t.Run("missing key defaults", func(t *testing.T) {
		result, err := n.Evaluate(context.Background(),
			NewEvaluation(schema.Context{}))
		require.NoError(t, err)
		assert.Equal(t, "low", result.Value())
	})
}

func TestDecision_PredicateErrorPropagatesUnmodified(t *testing.T) {
	sentinel := errors.New("broken predicate")
	n := NewDecision("check",
		func(ctx context.Context, c schema.Context) (bool, error) {
			return false, sentinel
		},
		NewOutcome("yes", nil),
		NewOutcome("no", nil))

	result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
	assert.ErrorIs(t, err, sentinel)
	assert.Same(t, sentinel, err) // no wrapping, fail fast
	assert.False(t, result.Present())
}

func TestDecision_ChildSetters(t *testing.T) {
	n := NewDecision("check", truePred, nil, nil)
	n.SetTrueNode(NewOutcome("yes", nil)).SetFalseNode(NewOutcome("no", nil))

	assert.NotNil(t, n.TrueNode())
	assert.NotNil(t, n.FalseNode())

	result, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
	require.NoError(t, err)
	assert.Equal(t, "yes", result.Value())
}

func TestDecision_NoActionOfItsOwn(t *testing.T) {
	// Side effects originate only from descendant outcome nodes.
	calls := 0
	leaf := NewOutcome("yes", func(ctx context.Context, c schema.Context) error {
		calls++
		return nil
	})
	n := NewDecision("check", falsePred, leaf, nil)

	_, err := n.Evaluate(context.Background(), NewEvaluation(schema.Context{}))
	require.NoError(t, err)
	assert.Zero(t, calls)
}
