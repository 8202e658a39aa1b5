package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// looksLikeHTML sniffs for markup so HTML-saved reports get stripped before
// extraction. Plain text containing an angle bracket is not enough.
func looksLikeHTML(text string) bool {
	head := strings.ToLower(text)
	if len(head) > 2048 {
		head = head[:2048]
	}
	return strings.Contains(head, "<html") ||
		strings.Contains(head, "<!doctype html") ||
		strings.Contains(head, "<body")
}

// VisibleText reduces an HTML document to its visible text, one line per
// block-level element, skipping script/style content. Parse failures fall
// back to the raw input; the audit never dies on bad markup.
func VisibleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p", "div", "tr", "li", "br", "table", "h1", "h2", "h3", "h4":
				buf.WriteString("\n")
			case "td", "th":
				// Keep table cells on one line, column-separated, so the
				// columnar layout still sees aligned values
				buf.WriteString("  ")
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String()
}
