package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	var received []Event
	dispatcher.Subscribe(EventAccountRegistered, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventAccountRegistered,
		Actor:     "alice",
		Timestamp: time.Now().UTC(),
		Payload:   AccountRegisteredPayload{AccountID: "acct-1", Email: "alice@example.com"},
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
	assert.Equal(t, "alice", received[0].Actor)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	var calls int
	dispatcher.Subscribe(EventCompanyRegistered, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventAccountRegistered}))
	assert.Zero(t, calls)
}

func TestDispatcherHandlerFailureDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	var second bool
	dispatcher.Subscribe(EventRecruiterAdded, func(context.Context, Event) error {
		return errors.New("handler exploded")
	})
	dispatcher.Subscribe(EventRecruiterAdded, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventRecruiterAdded}))
	assert.True(t, second)
}
