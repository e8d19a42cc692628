package events

import "testing"

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Publish(Event{Type: TypeRulePushed, RuleId: "r1"})

	for _, ch := range []chan Event{a, b} {
		select {
		case ev := <-ch:
			if ev.RuleId != "r1" {
				t.Fatalf("unexpected event %+v", ev)
			}
			if ev.TS == "" {
				t.Fatalf("timestamp must be stamped on publish")
			}
		default:
			t.Fatalf("expected buffered event")
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Fatalf("expected closed channel")
	}

	// double unsubscribe must not panic
	hub.Unsubscribe(ch)
}

func TestPublishNeverBlocksOnFullSubscriber(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()

	for i := 0; i < 100; i++ {
		hub.Publish(Event{Type: TypePushCompleted})
	}

	if len(ch) != cap(ch) {
		t.Fatalf("expected full buffer, got %d", len(ch))
	}
}
