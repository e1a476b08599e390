// Package action provides ready-made outcome actions: the side effects
// an OutcomeNode runs against the context just before its terminal value
// is returned.
package action

import (
	"context"
	"log/slog"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
	"github.com/capybara-brain346/decision-tree-engine/pkg/predicate"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// Set returns an action that stores a fixed value under key.
func Set(key string, value any) dectree.Action {
	return func(ctx context.Context, c schema.Context) error {
		c[key] = value
		return nil
	}
}

// Log returns an action that logs msg at Info level together with the
// named context keys. Missing keys are logged as nil.
func Log(logger *slog.Logger, msg string, keys ...string) dectree.Action {
	return func(ctx context.Context, c schema.Context) error {
		attrs := make([]any, 0, len(keys))
		for _, key := range keys {
			attrs = append(attrs, slog.Any(key, c[key]))
		}
		logger.InfoContext(ctx, msg, attrs...)
		return nil
	}
}

// JQ returns an action that evaluates a jq program against the context
// and stores its output under key. Evaluation errors propagate and abort
// the outcome.
func JQ(engine *predicate.JQEngine, expression, key string) dectree.Action {
	return func(ctx context.Context, c schema.Context) error {
		out, err := engine.Evaluate(ctx, expression, c)
		if err != nil {
			return err
		}
		c[key] = out
		return nil
	}
}

// Chain returns an action that runs the given actions in order, stopping
// at the first error.
func Chain(actions ...dectree.Action) dectree.Action {
	return func(ctx context.Context, c schema.Context) error {
		for _, act := range actions {
			if err := act(ctx, c); err != nil {
				return err
			}
		}
		return nil
	}
}
