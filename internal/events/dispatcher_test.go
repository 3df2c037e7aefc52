package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventJobPosted, func(ctx context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	d.Subscribe(EventApplicationSubmitted, func(ctx context.Context, event Event) error {
		t.Fatal("handler for a different event type was invoked")
		return nil
	})

	event := Event{ID: "evt-1", Type: EventJobPosted, ActorID: 7}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "evt-1" {
		t.Fatalf("delivered = %+v, want evt-1", got)
	}
}

func TestPublishContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	d.Subscribe(EventJobPosted, func(ctx context.Context, event Event) error {
		return errors.New("handler blew up")
	})
	var delivered bool
	d.Subscribe(EventJobPosted, func(ctx context.Context, event Event) error {
		delivered = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventJobPosted}); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if !delivered {
		t.Fatal("second handler not reached after first errored")
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventApplicationStatusChanged}); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
}
