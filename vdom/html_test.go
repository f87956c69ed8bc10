//go:build !wasm

package vdom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestHTMLString_StableAttributeOrder(t *testing.T) {
	n := Button("×", map[string]any{
		"class":      "recommendations_close",
		"aria-label": "Close recommendations",
		"onClick":    func() {},
	})

	got := HTMLString(n)

	want := `<button aria-label="Close recommendations" class="recommendations_close">×</button>`
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestHTMLString_EscapesText(t *testing.T) {
	got := HTMLString(Heading(3, `Movies similar to "<b>":`, nil))

	if strings.Contains(got, "<b>") {
		t.Errorf("Expected text to be escaped, got %s", got)
	}

	// Round trip through the parser to confirm the visible text is intact.
	doc, err := html.Parse(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var text strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)
	if text.String() != `Movies similar to "<b>":` {
		t.Errorf("Expected original text after parse, got %q", text.String())
	}
}

func TestHTMLString_BooleanAndNumericAttributes(t *testing.T) {
	n := Button("×", map[string]any{"disabled": true, "hidden": false, "tabindex": 2})

	got := HTMLString(n)

	if !strings.Contains(got, `disabled=""`) {
		t.Errorf("Expected disabled attribute, got %s", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("Expected false boolean to be omitted, got %s", got)
	}
	if !strings.Contains(got, `tabindex="2"`) {
		t.Errorf("Expected numeric attribute, got %s", got)
	}
}

func TestHTMLString_NilRendersEmpty(t *testing.T) {
	if got := HTMLString(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestHTMLString_ChildrenInOrder(t *testing.T) {
	n := Div(map[string]any{"class": "list"},
		Span("one", nil),
		Text(" and "),
		Span("two", nil),
	)

	want := `<div class="list"><span>one</span> and <span>two</span></div>`
	if got := HTMLString(n); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
