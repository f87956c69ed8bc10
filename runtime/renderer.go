package runtime

import "errors"

// ErrNoMount is returned when a renderer is constructed without a mount element.
var ErrNoMount = errors.New("mount element not found")

// Renderer defines the minimal set of runtime operations used by components.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Renderer interface {
	// ReRender requests that the renderer re-run the render cycle.
	// Every render replaces the mount's entire content.
	ReRender()
}

// Scroller is implemented by renderers that can bring their mount element into view.
// Renderers without a viewport (tests, static HTML) may omit it.
type Scroller interface {
	ScrollIntoView()
}
