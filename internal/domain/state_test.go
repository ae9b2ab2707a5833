package domain

import "testing"

func TestLifecycleState_String(t *testing.T) {
	tests := []struct {
		state LifecycleState
		want  string
	}{
		{StateDraft, "Draft"},
		{StatePendingApproval, "PendingApproval"},
		{StateNeedsReapproval, "NeedsReapproval"},
		{StateApproved, "Approved"},
		{StateSentToCounterparty, "SentToCounterparty"},
		{StateExecuted, "Executed"},
		{StateCancelled, "Cancelled"},
		{LifecycleState(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestLifecycleState_Cancellable(t *testing.T) {
	tests := []struct {
		state LifecycleState
		want  bool
	}{
		{StateDraft, false},
		{StatePendingApproval, true},
		{StateNeedsReapproval, true},
		{StateApproved, true},
		{StateSentToCounterparty, true},
		{StateExecuted, false},
		{StateCancelled, false},
	}

	for _, tt := range tests {
		if got := tt.state.Cancellable(); got != tt.want {
			t.Errorf("%s.Cancellable() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestStateFromName_RoundTrip(t *testing.T) {
	for state := StateDraft; state <= StateCancelled; state++ {
		got, ok := StateFromName(state.String())
		if !ok {
			t.Fatalf("StateFromName(%q) not found", state.String())
		}
		if got != state {
			t.Errorf("StateFromName(%q) = %v, want %v", state.String(), got, state)
		}
	}

	if _, ok := StateFromName("Nope"); ok {
		t.Error("expected unknown name to miss")
	}
}

func TestActionFromName_RoundTrip(t *testing.T) {
	for action := ActionSubmit; action <= ActionCancel; action++ {
		got, ok := ActionFromName(action.String())
		if !ok {
			t.Fatalf("ActionFromName(%q) not found", action.String())
		}
		if got != action {
			t.Errorf("ActionFromName(%q) = %v, want %v", action.String(), got, action)
		}
	}

	if Action(99).String() != "unknown" {
		t.Error("expected unknown action name")
	}
}
