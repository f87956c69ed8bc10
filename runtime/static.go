package runtime

import (
	"sync"

	"github.com/vcrobe/movierecs/vdom"
)

var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer renders a component to an HTML string instead of a live DOM.
// It backs server-side previews; each render replaces the previous output.
type StaticRenderer struct {
	mu        sync.Mutex
	component Component
	html      string
	renders   int
}

// NewStaticRenderer attaches comp to a new StaticRenderer and runs OnInit.
// Nothing is rendered until RenderRoot or the component's first state change.
func NewStaticRenderer(comp Component) *StaticRenderer {
	r := &StaticRenderer{component: comp}
	comp.SetRenderer(r)
	if initializer, ok := comp.(Initializer); ok {
		initializer.OnInit()
	}
	return r
}

// RenderRoot renders the component and returns the resulting HTML.
func (r *StaticRenderer) RenderRoot() string {
	r.ReRender()
	return r.HTML()
}

// ReRender re-renders the component into the HTML buffer.
func (r *StaticRenderer) ReRender() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.html = vdom.HTMLString(r.component.Render(r))
	r.renders++
}

// HTML returns the most recent render. An idle component renders as "".
func (r *StaticRenderer) HTML() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.html
}

// Renders returns how many render cycles have run.
func (r *StaticRenderer) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// Close runs OnDestroy on the component and detaches it.
func (r *StaticRenderer) Close() {
	if cleaner, ok := r.component.(Cleaner); ok {
		cleaner.OnDestroy()
	}
	r.component.SetRenderer(nil)
}
