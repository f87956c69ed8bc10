// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"sync"

	"github.com/vcrobe/movierecs/runtime"
	"github.com/vcrobe/movierecs/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and every tree rendered before it
// - Count scroll requests
type TestRenderer struct {
	mu          sync.Mutex
	currentVDOM *vdom.VNode
	history     []*vdom.VNode
	scrolls     int
	component   runtime.Component
}

// Compile-time assertions.
var (
	_ runtime.Renderer = (*TestRenderer)(nil)
	_ runtime.Scroller = (*TestRenderer)(nil)
)

// NewTestRenderer creates a test renderer attached to the given component.
// OnInit runs immediately, mirroring a DOM mount.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	if initializer, ok := comp.(runtime.Initializer); ok {
		initializer.OnInit()
	}
	return r
}

// RenderRoot performs the initial render of the component.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.GetCurrentVDOM()
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentVDOM = r.component.Render(r)
	r.history = append(r.history, r.currentVDOM)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// A nil tree means the container is empty.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentVDOM
}

// History returns every tree rendered so far, oldest first.
func (r *TestRenderer) History() []*vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*vdom.VNode, len(r.history))
	copy(out, r.history)
	return out
}

// ScrollIntoView records a scroll request.
func (r *TestRenderer) ScrollIntoView() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scrolls++
}

// Scrolls returns how many times ScrollIntoView was requested.
func (r *TestRenderer) Scrolls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scrolls
}

// Unmount runs OnDestroy and detaches the component.
func (r *TestRenderer) Unmount() {
	if cleaner, ok := r.component.(runtime.Cleaner); ok {
		cleaner.OnDestroy()
	}
	r.component.SetRenderer(nil)
}
