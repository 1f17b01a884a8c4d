package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var got []Event
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventEmployeeCreated, EntityID: "emp-1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "emp-1", got[0].EntityID)
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	called := false
	d.Subscribe(EventEmployeeDeleted, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventDepartmentCreated}))
	require.False(t, called)
}

func TestDispatcherLogsHandlerErrorAndContinues(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	var calls int
	d.Subscribe(EventEmployeeUpdated, func(_ context.Context, _ Event) error {
		calls++
		return errors.New("handler failed")
	})
	d.Subscribe(EventEmployeeUpdated, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "e2", Type: EventEmployeeUpdated, EntityID: "emp-2"}))
	require.Equal(t, 2, calls)

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, string(EventEmployeeUpdated), fields["event_type"])
	require.Equal(t, "emp-2", fields["entity_id"])
}
