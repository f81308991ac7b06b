// Package dom is a small in-memory UI host: a tree of elements tagged with
// roles, simple attributes, a hidden flag, focus tracking and an event
// dispatch table keyed by event kind and role.
package dom

import (
	"slices"
	"strconv"
)

// Role names what an element is for. An element can carry several roles.
type Role string

// Element is a node in the UI tree.
type Element struct {
	Tag string

	roles    []Role
	attrs    map[string]string
	style    map[string]string
	text     string
	value    string
	hidden   bool
	validity string

	parent   *Element
	children []*Element

	// doc is only set on the document root.
	doc *Document
}

// NewElement creates a detached element.
func NewElement(tag string, roles ...Role) *Element {
	return &Element{
		Tag:   tag,
		roles: append([]Role(nil), roles...),
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// Roles returns a copy of the element's roles.
func (e *Element) Roles() []Role {
	return append([]Role(nil), e.roles...)
}

// HasRole reports whether the element carries role.
func (e *Element) HasRole(role Role) bool {
	return slices.Contains(e.roles, role)
}

// AddRole adds role if it is not already present.
func (e *Element) AddRole(role Role) *Element {
	if !e.HasRole(role) {
		e.roles = append(e.roles, role)
	}
	return e
}

// Attr returns the named attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttrOr returns the named attribute or "" when unset.
func (e *Element) AttrOr(name string) string {
	return e.attrs[name]
}

// SetAttr sets an attribute and returns e for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// RemoveAttr clears an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Style returns the named inline style value.
func (e *Element) Style(name string) string {
	return e.style[name]
}

// SetStyle sets an inline style value.
func (e *Element) SetStyle(name, value string) {
	e.style[name] = value
}

// Text returns the concatenated text of e and its descendants.
func (e *Element) Text() string {
	if len(e.children) == 0 {
		return e.text
	}
	s := e.text
	for _, c := range e.children {
		s += c.Text()
	}
	return s
}

// SetText replaces the element's children with plain text.
func (e *Element) SetText(text string) *Element {
	e.ReplaceChildren()
	e.text = text
	return e
}

// Value returns the value of a form control.
func (e *Element) Value() string { return e.value }

// SetValue sets the value of a form control.
func (e *Element) SetValue(v string) { e.value = v }

// ValidationMessage returns the custom validity message, "" when valid.
func (e *Element) ValidationMessage() string { return e.validity }

// SetCustomValidity sets or, with "", clears the validity message.
func (e *Element) SetCustomValidity(msg string) { e.validity = msg }

// Hidden reports the element's own hidden flag.
func (e *Element) Hidden() bool { return e.hidden }

// SetHidden sets the element's own hidden flag.
func (e *Element) SetHidden(hidden bool) { e.hidden = hidden }

// Visible reports whether neither e nor any ancestor is hidden.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return false
		}
	}
	return true
}

// TabIndex returns the parsed tabindex attribute, with buttons and inputs
// defaulting to 0 and everything else to -1. The second result reports
// whether the element can take focus at all.
func (e *Element) TabIndex() (int, bool) {
	if v, ok := e.attrs["tabindex"]; ok {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n, true
		}
	}
	switch e.Tag {
	case "button", "input":
		return 0, true
	}
	return -1, false
}

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Append adds children to the end of e, detaching them from any previous parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Remove()
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// ReplaceChildren removes all children of e and appends the given ones.
func (e *Element) ReplaceChildren(children ...*Element) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.text = ""
	e.Append(children...)
}

// ReplaceWith puts replacement in e's position and detaches e.
func (e *Element) ReplaceWith(replacement *Element) {
	p := e.parent
	if p == nil {
		return
	}
	replacement.Remove()
	idx := slices.Index(p.children, e)
	p.children[idx] = replacement
	replacement.parent = p
	e.parent = nil
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Closest returns the nearest element, starting with e itself and walking
// up, that carries role.
func (e *Element) Closest(role Role) *Element {
	for n := e; n != nil; n = n.parent {
		if n.HasRole(role) {
			return n
		}
	}
	return nil
}

// Query returns the first descendant of e, in document order, carrying role.
func (e *Element) Query(role Role) *Element {
	var found *Element
	e.walk(func(n *Element) bool {
		if n != e && n.HasRole(role) {
			found = n
			return false
		}
		return true
	})
	return found
}

// QueryTag returns the first descendant with the given tag carrying role.
func (e *Element) QueryTag(tag string, role Role) *Element {
	var found *Element
	e.walk(func(n *Element) bool {
		if n != e && n.Tag == tag && n.HasRole(role) {
			found = n
			return false
		}
		return true
	})
	return found
}

// QueryAll returns every element in e's subtree, including e, carrying role.
func (e *Element) QueryAll(role Role) []*Element {
	var out []*Element
	e.walk(func(n *Element) bool {
		if n.HasRole(role) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Walk visits e and its descendants in document order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) {
	e.walk(fn)
}

func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// OwnerDocument returns the document e is attached to, or nil when detached.
func (e *Element) OwnerDocument() *Document {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n.doc
}

// Connected reports whether e is attached to a document.
func (e *Element) Connected() bool {
	return e.OwnerDocument() != nil
}

// Focus moves document focus to e. It is a no-op for detached, hidden or
// unfocusable elements.
func (e *Element) Focus() {
	if doc := e.OwnerDocument(); doc != nil {
		doc.Focus(e)
	}
}

// Height returns the element's box height as measured by its document.
func (e *Element) Height() int {
	if doc := e.OwnerDocument(); doc != nil && doc.Measure != nil {
		return doc.Measure(e)
	}
	return 0
}
