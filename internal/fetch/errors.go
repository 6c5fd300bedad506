package fetch

import (
	"errors"
	"fmt"
)

// AggregateError reports that a required sub-request of an aggregate
// fetch failed. The whole view falls back to an error state; the
// results of sibling requests that did succeed are discarded.
type AggregateError struct {
	Screen string
	Err    error
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s: aggregate fetch failed: %v", e.Screen, e.Err)
}

func (e *AggregateError) Unwrap() error { return e.Err }

// AsAggregateError attempts to unwrap an error into an AggregateError.
func AsAggregateError(err error) (*AggregateError, bool) {
	var ae *AggregateError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
