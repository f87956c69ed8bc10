package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into an x/net/html node tree.
// Event handlers are dropped; boolean attributes are emitted only when true.
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == "#text" {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	switch {
	case n.Tag == "input":
		if n.Content != "" {
			node.Attr = append(node.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
	case n.Content != "":
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	default:
		for _, child := range n.Children {
			if c := ToHTMLNode(child); c != nil {
				node.AppendChild(c)
			}
		}
	}

	return node
}

// htmlAttributes renders attributes in key order so output is stable.
func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case nil:
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		case int, int64, float64, float32, uint32:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		default:
			// funcs and other non-serializable values are handlers
			if strings.HasPrefix(k, "on") {
				continue
			}
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return out
}

// RenderHTML writes the HTML serialization of the given nodes, in order.
func RenderHTML(w io.Writer, nodes ...*VNode) error {
	for _, n := range nodes {
		hn := ToHTMLNode(n)
		if hn == nil {
			continue
		}
		if err := html.Render(w, hn); err != nil {
			return fmt.Errorf("render %s: %w", n.Tag, err)
		}
	}
	return nil
}

// HTMLString is RenderHTML into a string. Nil renders as "".
func HTMLString(nodes ...*VNode) string {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, nodes...); err != nil {
		return ""
	}
	return buf.String()
}
