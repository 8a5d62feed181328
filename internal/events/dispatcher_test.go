package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		seen = append(seen, "first")
		return errors.New("delivery failed")
	})
	d.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		seen = append(seen, "second")
		return nil
	})
	d.Subscribe(EventPasswordChanged, func(ctx context.Context, event Event) error {
		seen = append(seen, "wrong-type")
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventUserRegistered,
		Email:     "alice@example.com",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	// A failing handler must not stop delivery to the remaining handlers.
	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	err := d.Publish(context.Background(), Event{Type: EventAccountConfirmed})
	assert.NoError(t, err)
}
