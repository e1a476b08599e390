package schema

import "fmt"

// Result is the product of evaluating a node: either a terminal outcome
// value or the distinguished "no result" produced when a decision has no
// applicable branch. The zero value is "no result", distinguishable from
// any legitimate outcome including a nil value.
type Result struct {
	value   any
	present bool
}

// Outcome wraps a terminal value in a present Result.
func Outcome(value any) Result {
	return Result{value: value, present: true}
}

// NoResult returns the distinguished empty Result.
func NoResult() Result {
	return Result{}
}

// Present reports whether the evaluation reached a terminal outcome.
func (r Result) Present() bool {
	return r.present
}

// Value returns the terminal outcome value, or nil for "no result".
func (r Result) Value() any {
	return r.value
}

// String renders the result for logs and demo output.
func (r Result) String() string {
	if !r.present {
		return "<no result>"
	}
	return fmt.Sprintf("%v", r.value)
}
