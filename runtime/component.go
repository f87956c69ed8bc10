package runtime

import "github.com/vcrobe/movierecs/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// A nil tree means the component currently renders nothing.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need setup once, before their first render.
type Initializer interface {
	OnInit()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}
