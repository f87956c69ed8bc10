//go:build js && wasm

// Command recommendations-wasm is the browser build of the recommendations widget.
//
//	GOOS=js GOARCH=wasm go build -o recommendations.wasm ./cmd/recommendations-wasm
//
// The hosting page provides an element with id "recommendations_container"
// and calls handleRecommendationsClick(title) from its trigger. Optional
// data attributes on the container: data-endpoint overrides the API path,
// data-log-level sets the console log level.
package main

import (
	"context"
	"syscall/js"

	"github.com/vcrobe/movierecs/console"
	"github.com/vcrobe/movierecs/events"
	"github.com/vcrobe/movierecs/internal/logging"
	"github.com/vcrobe/movierecs/recommend"
	"github.com/vcrobe/movierecs/runtime"
	"github.com/vcrobe/movierecs/widget"
)

const (
	containerID   = "recommendations_container"
	clickFuncName = "handleRecommendationsClick"
)

func main() {
	container := js.Global().Get("document").Call("getElementById", containerID)

	logging.Init(logging.Config{
		Level:  dataAttr(container, "logLevel"),
		Format: "json",
		Output: console.Writer{},
	})

	// 1. The fetcher talks to the page's own origin.
	origin := js.Global().Get("location").Get("origin").String()
	client := recommend.NewClient(origin, recommend.WithEndpoint(dataAttr(container, "endpoint")))

	// 2. Create the widget
	w := widget.New(client)

	// 3. Bind the widget to the container found above. Without one the widget
	// stays unmounted and every click is logged and ignored.
	renderer, err := runtime.NewRenderer(container)
	if err != nil {
		logging.Error().Err(err).Str("container", containerID).Msg("Recommendations container not found")
	} else {
		renderer.Mount(w, containerID)
	}

	// 4. Expose the click handler. Loading renders before the callback
	// returns; the fetch runs on its own goroutine so the event loop is free.
	events.ExposeStringFunc(clickFuncName, func(title string) {
		p, err := w.Begin(title)
		if err != nil {
			return
		}
		go w.Finish(context.Background(), p)
	})

	logging.Info().Str("container", containerID).Str("handler", clickFuncName).Msg("Recommendations widget ready")

	// Keep the Go program running
	select {}
}

// dataAttr reads container.dataset[key], or "" when absent.
func dataAttr(container js.Value, key string) string {
	if !container.Truthy() {
		return ""
	}
	v := container.Get("dataset").Get(key)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
