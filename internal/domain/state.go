package domain

// LifecycleState identifies the stage a trade occupies in its lifecycle.
//
// The lifecycle is a fixed graph:
//
//	Draft -> PendingApproval -> Approved -> SentToCounterparty -> Executed
//	                 |              ^
//	                 v              |
//	          NeedsReapproval ------+
//
// Every state between PendingApproval and SentToCounterparty inclusive can
// additionally be cancelled.
type LifecycleState int

const (
	StateDraft LifecycleState = iota
	StatePendingApproval
	StateNeedsReapproval
	StateApproved
	StateSentToCounterparty
	StateExecuted
	StateCancelled
)

var stateNames = map[LifecycleState]string{
	StateDraft:              "Draft",
	StatePendingApproval:    "PendingApproval",
	StateNeedsReapproval:    "NeedsReapproval",
	StateApproved:           "Approved",
	StateSentToCounterparty: "SentToCounterparty",
	StateExecuted:           "Executed",
	StateCancelled:          "Cancelled",
}

// String returns the stable display name used in logs and history records.
func (s LifecycleState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether s is one of the seven lifecycle states.
func (s LifecycleState) IsValid() bool {
	_, ok := stateNames[s]
	return ok
}

// Cancellable reports whether a trade in state s may be cancelled.
// Draft, Executed and Cancelled trades cannot.
func (s LifecycleState) Cancellable() bool {
	switch s {
	case StatePendingApproval, StateNeedsReapproval, StateApproved, StateSentToCounterparty:
		return true
	default:
		return false
	}
}

// StateFromName resolves a display name back to its lifecycle state.
func StateFromName(name string) (LifecycleState, bool) {
	for state, stateName := range stateNames {
		if stateName == name {
			return state, true
		}
	}
	return 0, false
}

// Action identifies a lifecycle transition operation.
type Action int

const (
	ActionSubmit Action = iota
	ActionAccept
	ActionUpdate
	ActionApprove
	ActionSendToExecute
	ActionBook
	ActionCancel
)

var actionNames = map[Action]string{
	ActionSubmit:        "submit",
	ActionAccept:        "accept",
	ActionUpdate:        "update",
	ActionApprove:       "approve",
	ActionSendToExecute: "send to execute",
	ActionBook:          "book",
	ActionCancel:        "cancel",
}

// String returns the stable display name used in history records.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionFromName resolves a display name back to its action.
func ActionFromName(name string) (Action, bool) {
	for action, actionName := range actionNames {
		if actionName == name {
			return action, true
		}
	}
	return 0, false
}
