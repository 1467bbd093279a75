package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTML converts an HTML document into analyzable text: headings
// become `#`-prefixed lines so heading detection and keyword placement keep
// working, and paragraphs become blank-line separated blocks.
func ExtractHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var b strings.Builder

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		b.WriteString("# " + title + "\n\n")
	}

	doc.Find("h1, h2, h3, h4, p, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(collapseWhitespace(s.Text()))
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			b.WriteString("# " + text + "\n\n")
		case "h2":
			b.WriteString("## " + text + "\n\n")
		case "h3":
			b.WriteString("### " + text + "\n\n")
		case "h4":
			b.WriteString("#### " + text + "\n\n")
		default:
			b.WriteString(text + "\n\n")
		}
	})

	out := strings.TrimSpace(b.String())
	if out == "" {
		// No block elements; fall back to the body text.
		out = strings.TrimSpace(collapseWhitespace(doc.Find("body").Text()))
	}
	return out, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
