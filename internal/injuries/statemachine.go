package injuries

import "time"

// allowedTransitions enumerates the permitted status edges:
//   - active <-> recovering (regression is a normal part of recovery)
//   - recovering -> recovered (recovered is terminal; a flare-up after
//     recovery is a new injury record, not a transition back)
//   - active/recovering -> chronic
//   - chronic -> recovering/recovered (a chronic classification does not
//     forbid eventual recovery)
var allowedTransitions = map[Status]map[Status]bool{
	StatusActive: {
		StatusRecovering: true,
		StatusChronic:    true,
	},
	StatusRecovering: {
		StatusActive:    true,
		StatusRecovered: true,
		StatusChronic:   true,
	},
	StatusChronic: {
		StatusRecovering: true,
		StatusRecovered:  true,
	},
	StatusRecovered: {},
}

// CanTransition reports whether the from -> to edge is permitted.
// Staying in the same status is always allowed (a check-in, not a move).
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from][to]
}

// Transition applies newStatus to the injury, or fails with
// InvalidTransitionError. On the first transition into recovered it stamps
// ActualRecoveryDate with asOf.
func Transition(injury *Injury, newStatus Status, asOf time.Time) error {
	if !newStatus.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status " + string(newStatus)}
	}
	if !CanTransition(injury.Status, newStatus) {
		return &InvalidTransitionError{From: injury.Status, To: newStatus}
	}

	injury.Status = newStatus
	if newStatus == StatusRecovered && injury.ActualRecoveryDate == nil {
		recoveredAt := asOf
		injury.ActualRecoveryDate = &recoveredAt
	}

	return nil
}
