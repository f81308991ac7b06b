package dom

import "strings"

// Handler responds to an event. current is the element whose role matched,
// which may be an ancestor of ev.Target.
type Handler func(current *Element, ev *Event) error

type binding struct {
	kind    EventKind
	role    Role
	handler Handler
}

// Behavior is a dispatch table from (event kind, role) to handler. For each
// binding matching the event kind, the nearest element at or above the event
// target carrying the binding's role receives the event.
type Behavior struct {
	bindings []binding
}

// NewBehavior creates an empty dispatch table.
func NewBehavior() *Behavior {
	return &Behavior{}
}

// On registers handler for events of kind whose target lies in an element
// carrying role. Bindings run in registration order.
func (b *Behavior) On(kind EventKind, role Role, handler Handler) *Behavior {
	b.bindings = append(b.bindings, binding{kind: kind, role: role, handler: handler})
	return b
}

// Dispatch runs every matching handler and stops at the first error.
func (b *Behavior) Dispatch(ev *Event) error {
	if ev.Target == nil {
		return nil
	}
	for _, bd := range b.bindings {
		if bd.kind != ev.Kind {
			continue
		}
		current := ev.Target.Closest(bd.role)
		if current == nil {
			continue
		}
		if err := bd.handler(current, ev); err != nil {
			return err
		}
	}
	return nil
}

// Keymap builds a keydown handler from key names such as "ArrowUp" or
// "Shift+PageDown". Modifiers must match exactly; a lowercase entry also
// matches.
func Keymap(keys map[string]Handler) Handler {
	return func(current *Element, ev *Event) error {
		name := ev.KeyName()
		if h, ok := keys[name]; ok {
			return h(current, ev)
		}
		if h, ok := keys[strings.ToLower(name)]; ok {
			return h(current, ev)
		}
		return nil
	}
}
