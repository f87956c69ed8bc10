package vdom

import "strings"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or "#text" for a bare text node
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler

	// eventCallbacks holds the js.Func values attached to the live element so
	// they can be released when the node is cleared. Typed as any so this file
	// builds without syscall/js.
	eventCallbacks []any
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is lifted into OnClick so it is never
// rendered as an HTML attribute.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// AddEventCallback records a callback attached to the rendered element.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks attached to the rendered element.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all recorded callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Classes returns the space separated entries of the "class" attribute.
func (v *VNode) Classes() []string {
	if v == nil || v.Attributes == nil {
		return nil
	}
	s, _ := v.Attributes["class"].(string)
	return strings.Fields(s)
}

// HasClass reports whether the node carries the given class name.
func (v *VNode) HasClass(name string) bool {
	for _, c := range v.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// Attr returns the string form of an attribute, or "" when absent.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[key].(string)
	return s
}

// Walk visits the node and its descendants depth-first, in document order.
// Returning false from fn stops the walk.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, child := range v.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByClass returns every descendant (including v) carrying the class, in document order.
func (v *VNode) FindByClass(name string) []*VNode {
	var found []*VNode
	v.Walk(func(n *VNode) bool {
		if n.HasClass(name) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode("#text", nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Span creates an inline <span> VNode.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
