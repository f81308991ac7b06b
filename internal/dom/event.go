package dom

// EventKind names a class of UI event.
type EventKind string

const (
	Click    EventKind = "click"
	KeyDown  EventKind = "keydown"
	FocusOut EventKind = "focusout"
)

// Key is a named key, as reported on keydown events.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyEscape     Key = "Escape"
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
	KeyTab        Key = "Tab"
)

// Event is a dispatched UI event.
type Event struct {
	Kind   EventKind
	Target *Element

	// Key and modifiers are set for keydown events.
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool

	// RelatedTarget is the element receiving focus on focusout, if any.
	RelatedTarget *Element

	defaultPrevented bool
}

// PreventDefault stops the host from running its default action for the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// KeyName returns the key with its modifiers, e.g. "Shift+PageUp".
func (e *Event) KeyName() string {
	name := string(e.Key)
	if e.Shift {
		name = "Shift+" + name
	}
	if e.Ctrl {
		name = "Ctrl+" + name
	}
	if e.Alt {
		name = "Alt+" + name
	}
	return name
}
