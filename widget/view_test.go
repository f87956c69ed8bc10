//go:build !wasm

package widget

import (
	"strings"
	"testing"

	"github.com/vcrobe/movierecs/vdom"
)

func TestRender_Idle(t *testing.T) {
	if n := Render(Idle{}, nil); n != nil {
		t.Errorf("Expected nil tree for Idle, got %s", n.Tag)
	}
}

func TestRender_LoadingCard(t *testing.T) {
	// Act
	n := Render(Loading{}, func() {})

	// Assert
	if n.Tag != "div" || !n.HasClass(ClassCard) || !n.HasClass(ClassLoading) {
		t.Fatalf("Expected loading card, got %s %v", n.Tag, n.Classes())
	}
	if len(n.Children) != 1 {
		t.Fatalf("Expected only the message, got %d children", len(n.Children))
	}
	msg := n.Children[0]
	if msg.Tag != "p" || !msg.HasClass(ClassMessage) || msg.Content != LoadingMessage {
		t.Errorf("Unexpected message node %s %v %q", msg.Tag, msg.Classes(), msg.Content)
	}
	if len(n.FindByClass(ClassClose)) != 0 {
		t.Errorf("Expected no close control while loading")
	}
}

func TestRender_SuccessCard(t *testing.T) {
	// Arrange
	dismissed := false
	s := Success{OriginalMovie: "Inception", Recommendations: []string{"Memento", "Interstellar"}}

	// Act
	n := Render(s, func() { dismissed = true })

	// Assert
	if !n.HasClass(ClassCard) || n.HasClass(ClassError) || n.HasClass(ClassLoading) {
		t.Errorf("Unexpected card classes %v", n.Classes())
	}

	titles := n.FindByClass(ClassTitle)
	if len(titles) != 1 || titles[0].Tag != "h3" {
		t.Fatalf("Expected one h3 title")
	}
	if titles[0].Content != `Movies similar to "Inception":` {
		t.Errorf("Unexpected heading %q", titles[0].Content)
	}

	lists := n.FindByClass(ClassList)
	if len(lists) != 1 {
		t.Fatalf("Expected one list")
	}
	items := lists[0].Children
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	for i, want := range []string{"Memento", "Interstellar"} {
		if items[i].Tag != "span" || !items[i].HasClass(ClassItem) || items[i].Content != want {
			t.Errorf("Item %d: expected span %q, got %s %q", i, want, items[i].Tag, items[i].Content)
		}
	}

	closers := n.FindByClass(ClassClose)
	if len(closers) != 1 {
		t.Fatalf("Expected one close control")
	}
	if closers[0].Attr("aria-label") != "Close recommendations" {
		t.Errorf("Unexpected aria-label %q", closers[0].Attr("aria-label"))
	}
	closers[0].OnClick()
	if !dismissed {
		t.Errorf("Expected close control to dismiss")
	}
}

func TestRender_SuccessKeepsDuplicatesAndOrder(t *testing.T) {
	recs := []string{"Zodiac", "Alien", "Zodiac"}

	n := Render(Success{OriginalMovie: "Se7en", Recommendations: recs}, nil)

	items := n.FindByClass(ClassItem)
	var got []string
	for _, it := range items {
		got = append(got, it.Content)
	}
	if strings.Join(got, ",") != "Zodiac,Alien,Zodiac" {
		t.Errorf("Expected input order with duplicates, got %v", got)
	}
}

func TestRender_FailureCard(t *testing.T) {
	n := Render(Failure{Message: "X"}, func() {})

	if !n.HasClass(ClassCard) || !n.HasClass(ClassError) {
		t.Fatalf("Expected error card, got %v", n.Classes())
	}
	msgs := n.FindByClass(ClassMessage)
	if len(msgs) != 1 || msgs[0].Content != "Error: X" {
		t.Fatalf("Expected 'Error: X'")
	}
	closers := n.FindByClass(ClassClose)
	if len(closers) != 1 || closers[0].Attr("aria-label") != "Close error message" {
		t.Errorf("Expected close control labelled for the error card")
	}
}

func TestRender_HTML(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{
			name:  "loading",
			state: Loading{},
			want:  `<div class="recommendations_card recommendations_loading"><p class="recommendations_message">Loading recommendations...</p></div>`,
		},
		{
			name:  "success",
			state: Success{OriginalMovie: "Inception", Recommendations: []string{"Memento", "Interstellar"}},
			want: `<div class="recommendations_card"><h3 class="recommendations_title">Movies similar to &#34;Inception&#34;:</h3>` +
				`<div class="recommendations_list"><span class="recommendation_item">Memento</span><span class="recommendation_item">Interstellar</span></div>` +
				`<button aria-label="Close recommendations" class="recommendations_close">×</button></div>`,
		},
		{
			name:  "error",
			state: Failure{Message: NoRecommendationsMessage},
			want: `<div class="recommendations_card recommendations_error"><p class="recommendations_message">Error: No recommendations found for this movie.</p>` +
				`<button aria-label="Close error message" class="recommendations_close">×</button></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vdom.HTMLString(Render(tt.state, func() {}))
			if got != tt.want {
				t.Errorf("Expected\n%s\ngot\n%s", tt.want, got)
			}
		})
	}
}
