package domain

import (
	"github.com/google/uuid"
)

// Attempt records what one strategy did for one retrieval.
//
// Payload is set only for Applicable. Err is set for Failed and, as the
// reason, for Inapplicable.
type Attempt struct {
	Strategy string
	Outcome  Outcome
	Payload  []byte
	Err      error
}

// NewApplicable returns a successful attempt.
func NewApplicable(strategy string, payload []byte) Attempt {
	return Attempt{Strategy: strategy, Outcome: Applicable, Payload: payload}
}

// NewInapplicable returns an attempt that did not apply, with the reason.
func NewInapplicable(strategy string, reason error) Attempt {
	return Attempt{Strategy: strategy, Outcome: Inapplicable, Err: reason}
}

// NewFailed returns a failed attempt.
func NewFailed(strategy string, err error) Attempt {
	return Attempt{Strategy: strategy, Outcome: Failed, Err: err}
}

// Retrieval is the result of a successful fallback run.
//
// Attempts lists every strategy that was consulted, in order, ending with
// Source. It explains why earlier strategies were skipped.
type Retrieval struct {
	ID       uuid.UUID
	Format   Format
	Source   string
	Payload  []byte
	Attempts []Attempt
}
