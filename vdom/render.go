//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/movierecs/console"
)

// supportedTags lists the element tags createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "button": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear removes every child of mount and releases the callbacks held by
// prevVDOM, the tree that was rendered into it.
func Clear(mount js.Value, prevVDOM *VNode) {
	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	if !mount.Truthy() {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil || !mount.Truthy() {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// ScrollIntoView scrolls el into the viewport with the given behavior ("smooth", "auto")
// and block alignment ("start", "center", "end", "nearest").
func ScrollIntoView(el js.Value, behavior, block string) {
	if !el.Truthy() {
		return
	}

	opts := js.Global().Get("Object").New()
	opts.Set("behavior", behavior)
	opts.Set("block", block)
	el.Call("scrollIntoView", opts)
}

// setAttributeValue sets an attribute on an element. A true bool renders as
// an empty attribute, false omits it.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		}
		return
	}
	el.Call("setAttribute", key, value)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == "#text" {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Content != "" {
		// Content wins over children for text-bearing elements.
		el.Set("textContent", n.Content)
	} else {
		for _, child := range n.Children {
			childEl := createElement(child)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	}

	if n.OnClick != nil {
		onClick := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		n.AddEventCallback(cb)
	}

	return el
}
