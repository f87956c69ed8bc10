//go:build js && wasm && !dev

package runtime

import (
	"github.com/vcrobe/movierecs/internal/logging"
	"github.com/vcrobe/movierecs/vdom"
)

// callOnInit invokes the OnInit lifecycle method in production mode.
// Panics are recovered and logged so one component cannot take the page down.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error().Interface("panic", rec).Str("component", key).Msg("OnInit panic")
		}
	}()
	initializer.OnInit()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error().Interface("panic", rec).Str("component", key).Msg("OnDestroy panic")
		}
	}()
	cleaner.OnDestroy()
}

// callRender invokes Render in production mode. A panicking render leaves
// the container empty.
func (r *RendererImpl) callRender(comp Component) (n *vdom.VNode) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error().Interface("panic", rec).Msg("Render panic")
			n = nil
		}
	}()
	return comp.Render(r)
}
