package order

import (
	"fmt"
	"strings"

	"ordersync/internal/pkg/errs"
)

// Status is the marketplace status stored on a local order, e.g. "shipped".
// The zero value means no status has been applied yet.
type Status string

// Unset is the status of an order that has been created but not yet reconciled.
const Unset Status = ""

// NewStatus trims raw and rejects blank values.
func NewStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if err := s.Validate(); err != nil {
		return Unset, err
	}
	return s, nil
}

// Validate rejects the unset status.
func (s Status) Validate() error {
	if s == Unset {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsSet() bool {
	return s != Unset
}

// StatusChange is the outcome of moving an order to a target status.
type StatusChange int

const (
	statusChangeUnknown StatusChange = iota

	// StatusApplied means the stored status differs and must be written.
	StatusApplied

	// StatusAlreadyApplied means the stored status already equals the target.
	// Nothing needs to be written.
	StatusAlreadyApplied
)

func (c StatusChange) String() string {
	switch c {
	case StatusApplied:
		return "applied"
	case StatusAlreadyApplied:
		return "already applied"
	case statusChangeUnknown:
	}
	return "unknown"
}

// TransitionTo decides whether moving from s to target is a real change.
//
// A transition is redundant when the stored status is exactly equal to the target.
// No ordering between statuses is assumed: the marketplace is authoritative, so any
// different status is applied, including one that looks like a step backwards.
func (s Status) TransitionTo(target Status) (StatusChange, error) {
	if err := target.Validate(); err != nil {
		return statusChangeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"target status",
			fmt.Errorf("cannot transition from %q: %w", s.String(), err),
		)
	}

	if s == target {
		return StatusAlreadyApplied, nil
	}
	return StatusApplied, nil
}
