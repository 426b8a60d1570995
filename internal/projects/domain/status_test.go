package domain

import "testing"

func TestStatusValid(t *testing.T) {
	valid := []Status{StatusDraft, StatusInProgress, StatusCompleted}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []Status{"", "draft", "DELIVERED", "CANCELLED"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestStatusCanTransition(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusDraft, StatusCompleted, false},
		{StatusDraft, StatusDraft, false},
		{StatusInProgress, StatusDraft, false},
		{StatusCompleted, StatusDraft, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%q -> %q) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}
