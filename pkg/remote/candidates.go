package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoCandidates is returned by FirstSuccess when there is nothing to try.
var ErrNoCandidates = errors.New("no candidate endpoints")

// AttemptError collects the failure of every candidate tried by FirstSuccess.
type AttemptError struct {
	Failures map[string]error
	order    []string
}

func (e *AttemptError) add(candidate string, err error) {
	if e.Failures == nil {
		e.Failures = make(map[string]error)
	}
	e.Failures[candidate] = err
	e.order = append(e.order, candidate)
}

func (e *AttemptError) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, candidate := range e.order {
		parts = append(parts, fmt.Sprintf("%s: %v", candidate, e.Failures[candidate]))
	}
	return "all candidates failed: " + strings.Join(parts, "; ")
}

// FirstSuccess runs attempt against each candidate strictly in order and stops at the first
// one which succeeds, returning its result and the candidate which produced it.
// Candidates are never retried and never tried concurrently.
func FirstSuccess[T any](ctx context.Context, candidates []string, attempt func(ctx context.Context, candidate string) (T, error)) (T, string, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, "", ErrNoCandidates
	}
	failures := &AttemptError{}
	for _, candidate := range candidates {
		if ctxerr := ctx.Err(); ctxerr != nil {
			failures.add(candidate, ctxerr)
			continue
		}
		result, err := attempt(ctx, candidate)
		if err == nil {
			return result, candidate, nil
		}
		failures.add(candidate, err)
	}
	return zero, "", failures
}
