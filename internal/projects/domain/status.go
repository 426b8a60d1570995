// Package domain holds the project lifecycle model.
package domain

// Status is the lifecycle state of a project. Inventory is only mutated on
// the DRAFT to IN_PROGRESS transition.
type Status string

const (
	// StatusDraft is a priced quote that has not reserved any stock.
	StatusDraft Status = "DRAFT"
	// StatusInProgress means the project was approved and stock was deducted.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusCompleted is the terminal state.
	StatusCompleted Status = "COMPLETED"
)

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// transitions is the full lifecycle graph. There are no backward edges:
// an approved project cannot return to draft because its stock deduction
// already happened.
var transitions = map[Status]Status{
	StatusDraft:      StatusInProgress,
	StatusInProgress: StatusCompleted,
}

// CanTransition reports whether moving from s to target is allowed.
func (s Status) CanTransition(target Status) bool {
	next, ok := transitions[s]
	return ok && next == target
}
