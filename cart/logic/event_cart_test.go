package logic

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Test UUID namespace for deterministic cart IDs.
var testUUIDNamespace = uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890")

func testCartID(name string) uuid.UUID {
	return uuid.NewSHA1(testUUIDNamespace, []byte(name))
}

func newTestEventCart(name string) *EventSourcedCart {
	cart := NewEventSourcedCart(testCartID(name))
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cart.now = func() time.Time { return at }
	return cart
}

func TestRebuildState_NoEvents(t *testing.T) {
	state := RebuildState(nil)

	assert.Empty(t, state.Items)
	assert.False(t, state.Contains(Book))
}

func TestRebuildState_AddsAndRemoves(t *testing.T) {
	state := RebuildState([]CartEvent{
		{Sequence: 0, Type: KindItemAdded, Item: Book},
		{Sequence: 1, Type: KindItemAdded, Item: "Shoes"},
		{Sequence: 2, Type: KindItemAdded, Item: Book},
		{Sequence: 3, Type: KindItemRemoved, Item: Book},
	})

	assert.Equal(t, []string{"Shoes", Book}, state.Items)
	assert.Equal(t, 1, state.Count(Book))
	assert.True(t, state.Contains("Shoes"))
}

func TestRebuildState_IgnoresUnknownEvents(t *testing.T) {
	state := RebuildState([]CartEvent{
		{Type: KindItemAdded, Item: Book},
		{Type: "CartCleared"},
	})

	assert.Equal(t, []string{Book}, state.Items)
}

func TestEventSourcedCart_RemoveOneOfTwoBooksKeepsDiscount(t *testing.T) {
	cart := newTestEventCart("two-books")
	cart.AddItem(Book)
	cart.AddItem(Book)

	require.NoError(t, cart.RemoveItem(Book))

	assert.Equal(t, 5, cart.DiscountPercentage())
	assert.Equal(t, []string{Book}, cart.Items())
}

func TestEventSourcedCart_RecordsEvents(t *testing.T) {
	cart := newTestEventCart("log")
	cart.AddItem("Shirt")
	cart.AddItem(Book)
	require.NoError(t, cart.RemoveItem("Shirt"))

	events := cart.Events()
	require.Len(t, events, 3)

	wantKinds := []string{KindItemAdded, KindItemAdded, KindItemRemoved}
	wantItems := []string{"Shirt", Book, "Shirt"}
	for i, event := range events {
		assert.Equal(t, uint32(i), event.Sequence)
		assert.Equal(t, wantKinds[i], event.Kind())
		assert.Equal(t, wantItems[i], event.Item)
		assert.True(t, event.At.AsTime().Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	}
	assert.Equal(t, uint32(3), cart.NextSequence())
}

func TestEventSourcedCart_RemoveMissingItemRecordsNothing(t *testing.T) {
	cart := newTestEventCart("missing")
	cart.AddItem("Shirt")

	err := cart.RemoveItem(Book)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, StatusFailedPrecondition, cmdErr.Code)
	assert.Len(t, cart.Events(), 1)
}

func TestEventSourcedCart_EventsReturnsCopy(t *testing.T) {
	cart := newTestEventCart("copy")
	cart.AddItem(Book)

	events := cart.Events()
	events[0].Item = "Shirt"
	events[0].At = timestamppb.New(time.Unix(0, 0))

	assert.Equal(t, []string{Book}, cart.Items())
	assert.Equal(t, 5, cart.DiscountPercentage())
}

func TestEventSourcedCart_ItemsReturnsCopy(t *testing.T) {
	cart := newTestEventCart("items-copy")
	cart.AddItem(Book)

	items := cart.Items()
	items[0] = "Shirt"

	assert.Equal(t, []string{Book}, cart.Items())
}

func TestEventSourcedCart_ID(t *testing.T) {
	cart := NewEventSourcedCart(testCartID("identity"))

	assert.Equal(t, testCartID("identity"), cart.ID())
	assert.NotEqual(t, testCartID("other"), cart.ID())
}
