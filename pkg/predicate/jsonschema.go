package predicate

import (
	"context"
	"encoding/json"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// MatchesSchema compiles a JSON Schema (Draft 2020-12) and returns a
// predicate that holds when the context validates against it. A failed
// validation is an ordinary false, not an error; only serialization
// problems surface as errors. The core engine still enforces no context
// schema — this is just another predicate a caller may choose to hang a
// branch on.
func MatchesSchema(schemaJSON []byte) (dectree.Predicate, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat()

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
	if err != nil {
		return nil, schema.NewError(schema.ErrCodeValidation, "invalid context schema").WithCause(err)
	}
	if err := c.AddResource("context.json", doc); err != nil {
		return nil, schema.NewError(schema.ErrCodeValidation, "add context schema resource").WithCause(err)
	}

	compiled, err := c.Compile("context.json")
	if err != nil {
		return nil, schema.NewError(schema.ErrCodeValidation, "compile context schema").WithCause(err)
	}

	return func(ctx context.Context, data schema.Context) (bool, error) {
		doc, err := toJSONValue(map[string]any(data))
		if err != nil {
			return false, schema.NewError(schema.ErrCodeExecution,
				"failed to serialize context for schema validation").WithCause(err)
		}

		if err := compiled.Validate(doc); err != nil {
			if _, ok := err.(*jsonschema.ValidationError); ok {
				return false, nil
			}
			return false, schema.NewError(schema.ErrCodeExecution,
				"context schema validation").WithCause(err)
		}
		return true, nil
	}, nil
}

// toJSONValue round-trips a Go value through JSON encoding/decoding so
// that numeric values become json.Number (required by the jsonschema
// library).
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}
