package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvent struct {
	productID string
	qty       int
}

func TestMediatorSubmitAdd(t *testing.T) {
	var events []capturedEvent
	e := New(1)
	m := NewMediator("p1", e, func(id string, qty int) {
		events = append(events, capturedEvent{id, qty})
	})

	e.OnType("3")
	m.SubmitAdd()

	require.Len(t, events, 1)
	assert.Equal(t, capturedEvent{"p1", 3}, events[0])
}

func TestMediatorSubmitAddNormalizesInvalidText(t *testing.T) {
	var events []capturedEvent
	e := New(1)
	m := NewMediator("p1", e, func(id string, qty int) {
		events = append(events, capturedEvent{id, qty})
	})

	e.OnType("20e")
	m.SubmitAdd()

	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].qty)
}

func TestMediatorSubmitRemoveAlwaysEmitsZero(t *testing.T) {
	var events []capturedEvent
	e := New(9)
	m := NewMediator("p2", e, func(id string, qty int) {
		events = append(events, capturedEvent{id, qty})
	})

	// Whatever is typed in the field, remove means 0.
	e.OnType("42")
	m.SubmitRemove()

	require.Len(t, events, 1)
	assert.Equal(t, capturedEvent{"p2", 0}, events[0])
}
