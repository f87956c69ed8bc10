//go:build js && wasm && dev

package runtime

import "github.com/vcrobe/movierecs/vdom"

// callOnInit invokes the OnInit lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

// callOnDestroy invokes the OnDestroy lifecycle method in development mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}

// callRender invokes Render in development mode.
func (r *RendererImpl) callRender(comp Component) *vdom.VNode {
	return comp.Render(r)
}
