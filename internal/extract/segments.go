package extract

import (
	"strings"

	"github.com/ppiankov/veridoc/internal/model"
	"golang.org/x/net/html"
)

// segmentTags are the structural units that become segments, in document order
var segmentTags = map[string]bool{
	"p": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"td": true, "th": true,
}

// skipTags never contribute rendered text
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true,
}

// Segmenter turns document markup into an ordered sequence of text segments,
// each paired with the hyperlinks that appear within it.
type Segmenter struct{}

// NewSegmenter creates a new segmenter
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segments extracts all qualifying structural units from the markup.
// Elements whose collapsed text is empty are skipped. A qualifying element
// nested inside another qualifying element yields its own segment.
func (s *Segmenter) Segments(markup string) ([]model.Segment, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var segments []model.Segment
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipTags[n.Data] {
				return
			}
			if segmentTags[n.Data] {
				text := collapsedText(n)
				if text != "" {
					segments = append(segments, model.Segment{
						Text:  text,
						Links: segmentLinks(n),
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return segments, nil
}

// segmentLinks collects the anchors nested within an element, keeping the raw
// href. Empty hrefs and same-page fragments are dropped; URLs are not
// deduplicated here.
func segmentLinks(n *html.Node) []model.LinkRef {
	var links []model.LinkRef
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := ""
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = strings.TrimSpace(attr.Val)
				}
			}
			if href != "" && !strings.HasPrefix(href, "#") {
				links = append(links, model.LinkRef{
					URL:    href,
					Anchor: collapsedText(n),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return links
}

// collapsedText returns the trimmed, whitespace-collapsed text content of a
// node, skipping non-rendered elements.
func collapsedText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// UniqueLinks returns the document's links deduplicated by literal URL string,
// in first-seen order. The anchor of the first occurrence wins.
func UniqueLinks(segments []model.Segment) []model.LinkRef {
	seen := make(map[string]bool)
	var unique []model.LinkRef
	for _, segment := range segments {
		for _, link := range segment.Links {
			if seen[link.URL] {
				continue
			}
			seen[link.URL] = true
			unique = append(unique, link)
		}
	}
	return unique
}

// PageText extracts the collapsed plain text of a whole fetched page,
// skipping script, style and noscript content.
func PageText(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	return collapsedText(doc)
}
