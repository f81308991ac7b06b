package dom

import (
	"github.com/MikeBiancalana/datepicker/internal/logger"
)

// Document owns an element tree, tracks focus and routes events to the
// behaviors listening on it.
type Document struct {
	Body *Element

	// Measure returns an element's box height. Hosts that lay elements out
	// set it; without it every element measures 0.
	Measure func(*Element) int

	// OnError receives errors returned by handlers run as a side effect of
	// a focus change. Defaults to logging them.
	OnError func(error)

	focused   *Element
	behaviors []*Behavior
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	d := &Document{}
	body := NewElement("body")
	body.doc = d
	d.Body = body
	return d
}

// Listen attaches a behavior so that events dispatched on the document reach it.
func (d *Document) Listen(b *Behavior) {
	d.behaviors = append(d.behaviors, b)
}

// ActiveElement returns the focused element, or the body when nothing is.
func (d *Document) ActiveElement() *Element {
	if d.focused == nil || !d.focused.Connected() {
		return d.Body
	}
	return d.focused
}

// Focus moves focus to el and fires a focusout event on the element losing
// it. It reports whether focus moved.
func (d *Document) Focus(el *Element) bool {
	if el == nil || el.OwnerDocument() != d || !el.Visible() {
		return false
	}
	if _, ok := el.TabIndex(); !ok {
		return false
	}

	prev := d.focused
	if prev == el {
		return true
	}
	d.focused = el

	if prev != nil && prev.Connected() {
		ev := &Event{Kind: FocusOut, Target: prev, RelatedTarget: el}
		if err := d.Dispatch(ev); err != nil {
			d.reportError(err)
		}
	}
	return true
}

// Blur drops focus back to the body, firing focusout on the focused element.
func (d *Document) Blur() {
	prev := d.focused
	d.focused = nil
	if prev != nil && prev.Connected() {
		if err := d.Dispatch(&Event{Kind: FocusOut, Target: prev}); err != nil {
			d.reportError(err)
		}
	}
}

// Dispatch routes ev to every attached behavior and returns the first error.
func (d *Document) Dispatch(ev *Event) error {
	for _, b := range d.behaviors {
		if err := b.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

// Focusables returns the visible elements that take part in sequential
// focus navigation, in document order.
func (d *Document) Focusables() []*Element {
	return appendFocusables(nil, d.Body)
}

// appendFocusables collects n's focusable subtree, skipping hidden branches
// without ending the traversal.
func appendFocusables(out []*Element, n *Element) []*Element {
	if n.hidden {
		return out
	}
	if idx, ok := n.TabIndex(); ok && idx >= 0 {
		out = append(out, n)
	}
	for _, c := range n.children {
		out = appendFocusables(out, c)
	}
	return out
}

// FocusNext moves focus forward (or backward) through Focusables, wrapping.
func (d *Document) FocusNext(backward bool) bool {
	items := d.Focusables()
	if len(items) == 0 {
		return false
	}
	active := d.ActiveElement()
	idx := -1
	for i, n := range items {
		if n == active {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx < 0 && backward:
		next = len(items) - 1
	case idx < 0:
		next = 0
	case backward:
		next = (idx - 1 + len(items)) % len(items)
	default:
		next = (idx + 1) % len(items)
	}
	return d.Focus(items[next])
}

func (d *Document) reportError(err error) {
	if d.OnError != nil {
		d.OnError(err)
		return
	}
	logger.Error("dom: handler failed during focus change", "error", err)
}
