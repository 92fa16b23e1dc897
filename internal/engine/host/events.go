package host

import "sort"

// ListenerID identifies a registered listener. Zero is never issued.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// EventTarget keeps listeners per event type and invokes them on Dispatch.
// Go funcs are not comparable, so registration hands back an ID that is
// later used for removal.
type EventTarget struct {
	nextID    ListenerID
	listeners map[string][]listener
}

// NewEventTarget creates an empty event target.
func NewEventTarget() *EventTarget {
	return &EventTarget{
		listeners: make(map[string][]listener),
	}
}

// AddEventListener registers fn for eventType and returns its ID.
func (t *EventTarget) AddEventListener(eventType string, fn func()) ListenerID {
	t.nextID++
	id := t.nextID
	t.listeners[eventType] = append(t.listeners[eventType], listener{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters the listener. Unknown IDs are ignored.
func (t *EventTarget) RemoveEventListener(eventType string, id ListenerID) {
	ls := t.listeners[eventType]
	for i, l := range ls {
		if l.id == id {
			t.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(t.listeners[eventType]) == 0 {
		delete(t.listeners, eventType)
	}
}

// Dispatch invokes every listener for eventType in registration order.
// Listeners added or removed during dispatch take effect on the next call.
func (t *EventTarget) Dispatch(eventType string) int {
	ls := append([]listener(nil), t.listeners[eventType]...)
	for _, l := range ls {
		l.fn()
	}
	return len(ls)
}

// ListenerCount returns the number of listeners registered for eventType.
func (t *EventTarget) ListenerCount(eventType string) int {
	return len(t.listeners[eventType])
}

// EventTypes returns the event types that currently have listeners, sorted.
func (t *EventTarget) EventTypes() []string {
	types := make([]string, 0, len(t.listeners))
	for typ := range t.listeners {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
