package domain

import (
	"errors"
	"fmt"
)

var (
	// Trade directory errors
	ErrTradeNotFound = errors.New("trade not found")
	ErrDuplicateID   = errors.New("duplicate trade identifier")

	// History ledger errors
	ErrHistoryNotFound = errors.New("history record not found")
)

// InvalidDetailsError reports a business-rule violation in proposed trade
// fields. The caller can recover by supplying corrected input.
type InvalidDetailsError struct {
	Issue string
}

func (e *InvalidDetailsError) Error() string {
	return "invalid trade details: " + e.Issue
}

// UnauthorisedRequesterError reports that the acting requester does not own
// the trade it attempted to transition. Terminal for the call; no history
// entry is written and no state change occurs.
type UnauthorisedRequesterError struct {
	RequesterID string
	Action      Action
	State       LifecycleState
}

func (e *UnauthorisedRequesterError) Error() string {
	return fmt.Sprintf("requester %s is not authorised to %s from state %s",
		e.RequesterID, e.Action, e.State)
}

// InvalidTransitionError reports an action attempted from a state that does
// not admit it.
type InvalidTransitionError struct {
	State  LifecycleState
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a trade in state %s", e.Action, e.State)
}

// InvalidCapabilityError reports an action attempted with a capability that
// may not perform it.
type InvalidCapabilityError struct {
	Capability Capability
	Action     Action
}

func (e *InvalidCapabilityError) Error() string {
	return fmt.Sprintf("capability %s may not %s a trade", e.Capability, e.Action)
}
