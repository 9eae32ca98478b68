package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from a catalog summary, separating paragraphs
// with blank lines. Unparseable input is returned trimmed.
func PlainText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := collapseSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return collapseSpace(doc.Text())
	}
	return strings.Join(paragraphs, "\n\n")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
