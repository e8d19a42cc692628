package events

import (
	"sync"
	"time"
)

const (
	TypeRulePushed     = "rule_pushed"
	TypeRulePushFailed = "rule_push_failed"
	TypePushCompleted  = "push_completed"
)

type Event struct {
	Type      string `json:"type"`
	TS        string `json:"ts"`
	RuleId    string `json:"rule_id,omitempty"`
	RuleName  string `json:"rule_name,omitempty"`
	NsxRuleId string `json:"nsx_rule_id,omitempty"`
	SectionId string `json:"section_id,omitempty"`
	Error     string `json:"error,omitempty"`
	Pushed    int    `json:"pushed,omitempty"`
	Failed    int    `json:"failed,omitempty"`
}

// Hub fans push events out to subscribed websocket connections. Publish
// never blocks; a slow subscriber loses events rather than stalling a
// push batch.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) Publish(ev Event) {
	if ev.TS == "" {
		ev.TS = time.Now().UTC().Format(time.RFC3339Nano)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
