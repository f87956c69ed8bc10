package widget

import "github.com/vcrobe/movierecs/vdom"

// Class names produced for styling hooks.
const (
	ClassCard    = "recommendations_card"
	ClassTitle   = "recommendations_title"
	ClassList    = "recommendations_list"
	ClassItem    = "recommendation_item"
	ClassClose   = "recommendations_close"
	ClassError   = "recommendations_error"
	ClassLoading = "recommendations_loading"
	ClassMessage = "recommendations_message"
)

// User-visible messages.
const (
	LoadingMessage           = "Loading recommendations..."
	NoRecommendationsMessage = "No recommendations found for this movie."
	FallbackErrorMessage     = "Failed to load recommendations. Please try again."
)

const closeGlyph = "×"

// Render maps a state to its card. Idle renders nil. onDismiss is bound to
// the close control of terminal states.
func Render(s State, onDismiss func()) *vdom.VNode {
	switch s := s.(type) {
	case Loading:
		return loadingCard()
	case Success:
		return successCard(s, onDismiss)
	case Failure:
		return failureCard(s, onDismiss)
	default:
		return nil
	}
}

// Heading returns the success card title for movie.
func Heading(movie string) string {
	return `Movies similar to "` + movie + `":`
}

func loadingCard() *vdom.VNode {
	return vdom.Div(map[string]any{"class": ClassCard + " " + ClassLoading},
		vdom.Paragraph(LoadingMessage, map[string]any{"class": ClassMessage}),
	)
}

func successCard(s Success, onDismiss func()) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(s.Recommendations))
	for _, movie := range s.Recommendations {
		items = append(items, vdom.Span(movie, map[string]any{"class": ClassItem}))
	}

	return vdom.Div(map[string]any{"class": ClassCard},
		vdom.Heading(3, Heading(s.OriginalMovie), map[string]any{"class": ClassTitle}),
		vdom.Div(map[string]any{"class": ClassList}, items...),
		closeButton("Close recommendations", onDismiss),
	)
}

func failureCard(s Failure, onDismiss func()) *vdom.VNode {
	return vdom.Div(map[string]any{"class": ClassCard + " " + ClassError},
		vdom.Paragraph("Error: "+s.Message, map[string]any{"class": ClassMessage}),
		closeButton("Close error message", onDismiss),
	)
}

func closeButton(label string, onDismiss func()) *vdom.VNode {
	attrs := map[string]any{
		"class":      ClassClose,
		"aria-label": label,
	}
	if onDismiss != nil {
		attrs["onClick"] = onDismiss
	}
	return vdom.Button(closeGlyph, attrs)
}
