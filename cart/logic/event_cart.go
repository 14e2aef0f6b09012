package logic

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/searge/grokking-fp/internal/exercise"
)

// Event kinds recorded by EventSourcedCart.
const (
	KindItemAdded   = "ItemAdded"
	KindItemRemoved = "ItemRemoved"
)

// CartEvent is one entry of an EventSourcedCart's log.
type CartEvent struct {
	Sequence uint32
	Type     string
	Item     string
	At       *timestamppb.Timestamp
}

func (e CartEvent) Kind() string {
	return e.Type
}

// CartState is the state rebuilt from a cart's events.
type CartState struct {
	Items []string
}

func EmptyState() CartState {
	return CartState{Items: make([]string, 0)}
}

func (s CartState) Contains(item string) bool {
	return slices.Contains(s.Items, item)
}

func (s CartState) Count(item string) int {
	n := 0
	for _, it := range s.Items {
		if it == item {
			n++
		}
	}
	return n
}

func applyItemAdded(state *CartState, event CartEvent) {
	state.Items = append(state.Items, event.Item)
}

func applyItemRemoved(state *CartState, event CartEvent) {
	state.Items, _ = removeFirst(state.Items, event.Item)
}

var stateBuilder = exercise.NewStateBuilder[CartState, CartEvent](EmptyState).
	On(KindItemAdded, applyItemAdded).
	On(KindItemRemoved, applyItemRemoved)

// RebuildState rebuilds cart state from its event history.
func RebuildState(events []CartEvent) CartState {
	return stateBuilder.Rebuild(events)
}

// EventSourcedCart stores nothing but what happened to it. Items and the
// discount are rebuilt from the event log on every query.
type EventSourcedCart struct {
	id     uuid.UUID
	events []CartEvent
	now    func() time.Time
}

func NewEventSourcedCart(id uuid.UUID) *EventSourcedCart {
	return &EventSourcedCart{
		id:     id,
		events: make([]CartEvent, 0),
		now:    time.Now,
	}
}

func (c *EventSourcedCart) ID() uuid.UUID {
	return c.id
}

// NextSequence returns the sequence number the next event will get.
func (c *EventSourcedCart) NextSequence() uint32 {
	return uint32(len(c.events))
}

func (c *EventSourcedCart) record(kind, item string) {
	c.events = append(c.events, CartEvent{
		Sequence: c.NextSequence(),
		Type:     kind,
		Item:     item,
		At:       timestamppb.New(c.now()),
	})
}

func (c *EventSourcedCart) AddItem(item string) {
	c.record(KindItemAdded, item)
}

// RemoveItem records the removal of one item. Removing an item that is not
// in the cart records nothing.
func (c *EventSourcedCart) RemoveItem(item string) error {
	if !c.State().Contains(item) {
		return itemNotInCart(item)
	}
	c.record(KindItemRemoved, item)
	return nil
}

// State rebuilds the cart's state from its events.
func (c *EventSourcedCart) State() CartState {
	return RebuildState(c.events)
}

func (c *EventSourcedCart) Items() []string {
	return c.State().Items
}

func (c *EventSourcedCart) DiscountPercentage() int {
	return DiscountPercentage(c.State().Items)
}

// Events returns a copy of the event log.
func (c *EventSourcedCart) Events() []CartEvent {
	return slices.Clone(c.events)
}
