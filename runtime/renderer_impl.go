//go:build js && wasm

package runtime

import (
	"sync"
	"syscall/js"

	"github.com/vcrobe/movierecs/vdom"
)

// Compile-time assertions for the concrete DOM renderer.
var (
	_ Renderer = (*RendererImpl)(nil)
	_ Scroller = (*RendererImpl)(nil)
)

// RendererImpl renders one root component into a DOM element that is handed
// to it at construction. It never looks the element up itself.
type RendererImpl struct {
	mu        sync.Mutex
	mount     js.Value
	component Component
	key       string
	prevVDOM  *vdom.VNode
}

// NewRenderer creates a renderer bound to mount. It returns ErrNoMount when
// mount is null or undefined.
func NewRenderer(mount js.Value) (*RendererImpl, error) {
	if !mount.Truthy() {
		return nil, ErrNoMount
	}
	return &RendererImpl{mount: mount}, nil
}

// Mount attaches comp as the root component, runs OnInit and renders it.
// A previously mounted component is destroyed first.
func (r *RendererImpl) Mount(comp Component, key string) {
	r.Unmount()

	r.mu.Lock()
	r.component = comp
	r.key = key
	r.mu.Unlock()

	comp.SetRenderer(r)
	if initializer, ok := comp.(Initializer); ok {
		r.callOnInit(initializer, key)
	}
	r.RenderRoot()
}

// Unmount runs OnDestroy on the root component and empties the mount element.
func (r *RendererImpl) Unmount() {
	r.mu.Lock()
	comp, key := r.component, r.key
	prev := r.prevVDOM
	r.component = nil
	r.prevVDOM = nil
	r.mu.Unlock()

	if comp == nil {
		return
	}
	if cleaner, ok := comp.(Cleaner); ok {
		r.callOnDestroy(cleaner, key)
	}
	comp.SetRenderer(nil)
	vdom.Clear(r.mount, prev)
}

// RenderRoot replaces the mount element's content with the component's current tree.
// There is no patching: the previous subtree is always removed first.
func (r *RendererImpl) RenderRoot() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.component == nil {
		return
	}

	newVDOM := r.callRender(r.component)

	vdom.Clear(r.mount, r.prevVDOM)
	if newVDOM != nil {
		vdom.RenderTo(r.mount, newVDOM)
	}
	r.prevVDOM = newVDOM
}

// ReRender re-runs the render cycle.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// ScrollIntoView smoothly scrolls the mount element to the nearest viewport edge.
func (r *RendererImpl) ScrollIntoView() {
	vdom.ScrollIntoView(r.mount, "smooth", "nearest")
}
