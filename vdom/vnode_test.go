//go:build !wasm

package vdom

import "testing"

func TestNewVNode_LiftsOnClickOutOfAttributes(t *testing.T) {
	clicked := false
	n := Button("x", map[string]any{
		"class":   "close",
		"onClick": func() { clicked = true },
	})

	if _, ok := n.Attributes["onClick"]; ok {
		t.Fatalf("Expected onClick to be removed from attributes")
	}
	if n.OnClick == nil {
		t.Fatalf("Expected OnClick handler to be set")
	}
	n.OnClick()
	if !clicked {
		t.Errorf("Expected handler to run")
	}
}

func TestVNode_HasClass(t *testing.T) {
	n := Div(map[string]any{"class": "recommendations_card  recommendations_error"})

	if !n.HasClass("recommendations_card") || !n.HasClass("recommendations_error") {
		t.Errorf("Expected both classes, got %v", n.Classes())
	}
	if n.HasClass("recommendations") {
		t.Errorf("Expected no partial class match")
	}
	if Div(nil).HasClass("any") {
		t.Errorf("Expected node without attributes to have no classes")
	}
}

func TestVNode_FindByClass_DocumentOrder(t *testing.T) {
	root := Div(nil,
		Span("a", map[string]any{"class": "item"}),
		Div(nil, Span("b", map[string]any{"class": "item"})),
		Span("c", map[string]any{"class": "item"}),
	)

	found := root.FindByClass("item")

	if len(found) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(found))
	}
	for i, want := range []string{"a", "b", "c"} {
		if found[i].Content != want {
			t.Errorf("Match %d: expected %q, got %q", i, want, found[i].Content)
		}
	}
}

func TestHeading_ClampsLevel(t *testing.T) {
	tests := []struct {
		level int
		tag   string
	}{
		{0, "h1"},
		{3, "h3"},
		{9, "h6"},
	}
	for _, tt := range tests {
		if got := Heading(tt.level, "t", nil).Tag; got != tt.tag {
			t.Errorf("Heading(%d): expected %s, got %s", tt.level, tt.tag, got)
		}
	}
}

func TestEventCallbacks_ClearForgetsAll(t *testing.T) {
	n := Div(nil)
	n.AddEventCallback(1)
	n.AddEventCallback(2)

	if len(n.GetEventCallbacks()) != 2 {
		t.Fatalf("Expected 2 callbacks, got %d", len(n.GetEventCallbacks()))
	}
	n.ClearEventCallbacks()
	if len(n.GetEventCallbacks()) != 0 {
		t.Errorf("Expected callbacks to be cleared")
	}
}
