// Package widget implements the movie recommendations widget: a component
// that shows a loading card, fetches recommendations for a title, and then
// shows either the list or an error, each with a dismiss control.
//
// Only the most recent invocation may render its result. Each call to Begin
// issues a fresh token; a response whose token is no longer the latest is
// dropped.
package widget

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vcrobe/movierecs/internal/logging"
	"github.com/vcrobe/movierecs/recommend"
	"github.com/vcrobe/movierecs/runtime"
	"github.com/vcrobe/movierecs/signals"
	"github.com/vcrobe/movierecs/vdom"
)

var (
	_ runtime.Component   = (*Widget)(nil)
	_ runtime.Initializer = (*Widget)(nil)
	_ runtime.Cleaner     = (*Widget)(nil)
)

// Widget is the recommendations component. Mount it on a renderer before use.
type Widget struct {
	runtime.ComponentBase

	fetcher recommend.Fetcher
	logger  zerolog.Logger

	state       *signals.Signal[State]
	unsubscribe func()

	// mu orders token checks with state changes so a stale response can
	// never overwrite a newer Loading card.
	mu     sync.Mutex
	latest uuid.UUID
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the widget's logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(w *Widget) {
		w.logger = l
	}
}

// New creates an idle widget that looks recommendations up with f.
func New(f recommend.Fetcher, opts ...Option) *Widget {
	w := &Widget{
		fetcher: f,
		logger:  logging.With().Str("component", "widget").Logger(),
		state:   signals.NewSignal[State](Idle{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Pending is an invocation that has rendered Loading and awaits its response.
type Pending struct {
	Title string
	Token uuid.UUID
}

// OnInit subscribes the renderer to state changes.
func (w *Widget) OnInit() {
	w.unsubscribe = w.state.Subscribe(w.StateHasChanged)
}

// OnDestroy stops re-rendering on state changes.
func (w *Widget) OnDestroy() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}

// Render returns the card for the current state, or nil when idle.
func (w *Widget) Render(r runtime.Renderer) *vdom.VNode {
	return Render(w.state.Get(), w.Dismiss)
}

// State returns the current UI state.
func (w *Widget) State() State {
	return w.state.Get()
}

// HandleClick is the single entry point for a user asking for recommendations.
// It renders Loading, blocks on the fetch, then renders the outcome.
// It returns recommend.ErrMissingContainer when the widget is not mounted;
// every other failure is rendered, not returned.
func (w *Widget) HandleClick(ctx context.Context, title string) error {
	p, err := w.Begin(title)
	if err != nil {
		return err
	}
	w.Finish(ctx, p)
	return nil
}

// Begin is the synchronous half of HandleClick: it renders Loading and
// returns the invocation to pass to Finish.
func (w *Widget) Begin(title string) (*Pending, error) {
	if !w.Mounted() {
		w.logger.Error().Err(recommend.ErrMissingContainer).Msg("Recommendations container not found")
		return nil, recommend.ErrMissingContainer
	}

	p := &Pending{Title: title, Token: uuid.New()}

	w.mu.Lock()
	w.latest = p.Token
	w.state.Set(Loading{})
	w.mu.Unlock()

	w.logger.Debug().Str("title", title).Str("token", p.Token.String()).Msg("Fetching recommendations")
	return p, nil
}

// Finish fetches recommendations for p and renders the outcome, unless a
// newer invocation has started since p began.
func (w *Widget) Finish(ctx context.Context, p *Pending) {
	resp, err := w.fetcher.Fetch(ctx, recommend.Request{MovieTitle: p.Title})
	next := Resolve(resp, err)

	w.mu.Lock()
	if p.Token != w.latest {
		w.mu.Unlock()
		w.logger.Debug().Str("title", p.Title).Str("token", p.Token.String()).Msg("Discarding stale recommendations response")
		return
	}
	w.state.Set(next)
	w.mu.Unlock()

	switch s := next.(type) {
	case Success:
		w.logger.Debug().Str("title", p.Title).Int("count", len(s.Recommendations)).Msg("Rendered recommendations")
		w.ScrollIntoView()
	case Failure:
		w.logger.Debug().Err(ResolveError(resp, err)).Str("title", p.Title).Str("message", s.Message).Msg("Rendered recommendations error")
	}
}

// Dismiss clears a Success or Failure card back to Idle. It does nothing in
// other states; a request in flight cannot be dismissed.
func (w *Widget) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.state.Get().Terminal() {
		return
	}
	w.state.Set(Idle{})
}

// Resolve maps a fetch outcome to the state to render.
func Resolve(resp *recommend.Response, err error) State {
	if err != nil {
		msg := err.Error()
		var reqErr *recommend.RequestError
		if errors.As(err, &reqErr) {
			msg = reqErr.Message
		}
		if msg == "" {
			msg = FallbackErrorMessage
		}
		return Failure{Message: msg}
	}

	if !resp.HasResults() {
		return Failure{Message: NoRecommendationsMessage}
	}

	recs := make([]string, len(resp.Recommendations))
	copy(recs, resp.Recommendations)
	return Success{OriginalMovie: resp.OriginalMovie, Recommendations: recs}
}

// ResolveError reports the error taxonomy entry for a fetch outcome:
// nil, recommend.ErrEmptyResult, or the fetch error itself.
func ResolveError(resp *recommend.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.HasResults() {
		return recommend.ErrEmptyResult
	}
	return nil
}
