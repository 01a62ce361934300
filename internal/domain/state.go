package domain

// State is a wizard step. Transitions only move forward.
type State string

const (
	StateStart          State = "start"
	StateDestination    State = "destination"
	StateDate           State = "date"
	StatePassengerCount State = "passenger_count"
	StatePassengerNames State = "passenger_names"
	StateContact        State = "contact"
	StateSummary        State = "summary"
	StateConfirm        State = "confirm"
	StatePaymentConfirm State = "payment_confirm"
	StatePaymentMethod  State = "payment_method"
	StatePaid           State = "paid"
	StateDone           State = "done"
	StateAborted        State = "aborted"
	StateInterrupted    State = "interrupted"
)

var nextState = map[State]State{
	StateStart:          StateDestination,
	StateDestination:    StateDate,
	StateDate:           StatePassengerCount,
	StatePassengerCount: StatePassengerNames,
	StatePassengerNames: StateContact,
	StateContact:        StateSummary,
	StateSummary:        StateConfirm,
	StateConfirm:        StatePaymentConfirm,
	StatePaymentConfirm: StatePaymentMethod,
	StatePaymentMethod:  StatePaid,
	StatePaid:           StateDone,
}

// Stages that retry silently have no abort edge.
var abortable = map[State]bool{
	StateDestination:    true,
	StateDate:           true,
	StateConfirm:        true,
	StatePaymentConfirm: true,
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted || s == StateInterrupted
}

func (s State) Abortable() bool {
	return abortable[s]
}

// CanTransitionTo reports whether to is a legal successor of s. An interrupt
// may arrive in any non-terminal state.
func (s State) CanTransitionTo(to State) bool {
	switch {
	case s.Terminal():
		return false
	case to == StateInterrupted:
		return true
	case to == StateAborted:
		return s.Abortable()
	default:
		return nextState[s] == to
	}
}
