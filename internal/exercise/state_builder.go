// StateBuilder provides declarative event handler registration for state
// reconstruction, replacing switch chains in RebuildState functions.

package exercise

// Event is anything that names its own kind.
type Event interface {
	Kind() string
}

// StateApplier applies one event to state.
type StateApplier[S any, E Event] func(state *S, event E)

type applierEntry[S any, E Event] struct {
	kind  string
	apply StateApplier[S, E]
}

// StateBuilder builds state from events with registered handlers.
//
// Example:
//
//	var builder = exercise.NewStateBuilder[CartState, CartEvent](EmptyState).
//	    On("ItemAdded", applyItemAdded).
//	    On("ItemRemoved", applyItemRemoved)
//
//	func RebuildState(events []CartEvent) CartState {
//	    return builder.Rebuild(events)
//	}
type StateBuilder[S any, E Event] struct {
	newState func() S
	appliers []applierEntry[S, E]
}

// NewStateBuilder creates a StateBuilder whose states start from newState.
func NewStateBuilder[S any, E Event](newState func() S) *StateBuilder[S, E] {
	return &StateBuilder[S, E]{
		newState: newState,
		appliers: make([]applierEntry[S, E], 0),
	}
}

// On registers an applier for an event kind.
func (sb *StateBuilder[S, E]) On(kind string, apply StateApplier[S, E]) *StateBuilder[S, E] {
	sb.appliers = append(sb.appliers, applierEntry[S, E]{kind: kind, apply: apply})
	return sb
}

// Apply applies a single event to state. Unknown kinds are ignored.
func (sb *StateBuilder[S, E]) Apply(state *S, event E) {
	kind := event.Kind()
	for _, entry := range sb.appliers {
		if entry.kind == kind {
			entry.apply(state, event)
			return
		}
	}
}

// Rebuild creates fresh state and applies every event in order.
func (sb *StateBuilder[S, E]) Rebuild(events []E) S {
	state := sb.newState()
	for _, event := range events {
		sb.Apply(&state, event)
	}
	return state
}

// RebuildFunc returns Rebuild as a plain function value.
func (sb *StateBuilder[S, E]) RebuildFunc() func([]E) S {
	return sb.Rebuild
}
