package action

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
	"github.com/capybara-brain346/decision-tree-engine/pkg/predicate"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

func TestSet(t *testing.T) {
	c := schema.Context{}
	err := Set("status", "approved")(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "approved", c["status"])
}

func TestLog(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := schema.Context{"amount": 50000}

	err := Log(logger, "loan approved", "amount", "absent")(context.Background(), c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "loan approved")
	assert.Contains(t, out, "amount=50000")
	assert.Contains(t, out, "absent=<nil>")
}

func TestJQ(t *testing.T) {
	engine := predicate.NewJQEngine()
	c := schema.Context{"amount": 50000, "income": 75000}

	err := JQ(engine, `.amount / .income`, "payment_ratio")(context.Background(), c)
	require.NoError(t, err)
	assert.InDelta(t, 0.6667, c["payment_ratio"].(float64), 0.001)
}

func TestJQ_ErrorPropagates(t *testing.T) {
	engine := predicate.NewJQEngine()
	c := schema.Context{"amount": 50000}

	err := JQ(engine, `.amount | keys`, "out")(context.Background(), c)
	require.Error(t, err)
	assert.NotContains(t, c, "out")
}

func TestChain(t *testing.T) {
	t.Run("runs in order", func(t *testing.T) {
		var order []string
		mark := func(name string) dectree.Action {
			return func(ctx context.Context, c schema.Context) error {
				order = append(order, name)
				return nil
			}
		}

		err := Chain(mark("a"), mark("b"), mark("c"))(context.Background(), schema.Context{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("stops at first error", func(t *testing.T) {
		sentinel := errors.New("boom")
		ran := false

		err := Chain(
			func(ctx context.Context, c schema.Context) error { return sentinel },
			func(ctx context.Context, c schema.Context) error { ran = true; return nil },
		)(context.Background(), schema.Context{})

		assert.Same(t, sentinel, err)
		assert.False(t, ran)
	})
}

func TestActionsAttachToOutcomes(t *testing.T) {
	// End to end: an outcome's Set action mutates the caller's context.
	c := schema.Context{"credit_score": 700}
	tree := dectree.NewDecision("credit",
		func(ctx context.Context, data schema.Context) (bool, error) {
			return schema.GetNumber(data, "credit_score", 0) >= 650, nil
		},
		dectree.NewOutcome("APPROVED", Set("decision", "APPROVED")),
		nil)

	engine := dectree.NewEngine(tree)
	result, err := engine.Evaluate(context.Background(), c, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", result.Value())
	assert.Equal(t, "APPROVED", c["decision"])
}
