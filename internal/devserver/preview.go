package devserver

import (
	"net/http"

	"github.com/vcrobe/movierecs/recommend"
	"github.com/vcrobe/movierecs/runtime"
	"github.com/vcrobe/movierecs/widget"
)

// handlePreview runs the widget natively for ?title= and returns the card
// it ends up rendering, as an HTML fragment.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	client := recommend.NewClient(s.cfg.Upstream.URL,
		recommend.WithHTTPClient(s.upstreamClient),
		recommend.WithLogger(s.logger),
	)
	wdg := widget.New(client, widget.WithLogger(s.logger))
	renderer := runtime.NewStaticRenderer(wdg)
	defer renderer.Close()

	if err := wdg.HandleClick(r.Context(), title); err != nil {
		s.logger.Error().Err(err).Msg("Preview widget not mounted")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.previewResults.WithLabelValues(wdg.State().Kind()).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(renderer.HTML()))
}
