package api

import "testing"

func TestSSERegistry(t *testing.T) {
	h := &HTTPHandler{sseClients: make(map[string][]chan sseMessage)}

	first := make(chan sseMessage, 1)
	second := make(chan sseMessage, 1)
	h.registerSSEClient("client-a", first)
	h.registerSSEClient("client-a", second)

	h.publishSSEMessage("client-a", sseMessage{event: "generation_completed", data: "ok"})

	for i, ch := range []chan sseMessage{first, second} {
		select {
		case msg := <-ch:
			if msg.event != "generation_completed" {
				t.Errorf("channel %d: unexpected event %q", i, msg.event)
			}
		default:
			t.Errorf("channel %d: expected a message", i)
		}
	}

	h.unregisterSSEClient("client-a", first)
	h.publishSSEMessage("client-a", sseMessage{event: "ping"})

	select {
	case <-first:
		t.Error("unregistered channel should not receive messages")
	default:
	}
	select {
	case <-second:
	default:
		t.Error("remaining channel should still receive messages")
	}

	h.unregisterSSEClient("client-a", second)
	if len(h.sseClients) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(h.sseClients))
	}
}

func TestPublishToSlowConsumer(t *testing.T) {
	h := &HTTPHandler{sseClients: make(map[string][]chan sseMessage)}

	full := make(chan sseMessage, 1)
	full <- sseMessage{event: "stale"}
	h.registerSSEClient("client-b", full)

	// Full buffer: the publish must drop the message instead of blocking.
	h.publishSSEMessage("client-b", sseMessage{event: "generation_completed"})

	if got := len(full); got != 1 {
		t.Errorf("expected buffer to stay at 1 message, got %d", got)
	}
}

func TestPublishToUnknownClient(t *testing.T) {
	h := &HTTPHandler{sseClients: make(map[string][]chan sseMessage)}
	h.publishSSEMessage("nobody", sseMessage{event: "generation_completed"})
	h.publishSSEMessage("", sseMessage{event: "generation_completed"})
}
