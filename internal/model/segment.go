package model

// LinkRef is a hyperlink as it appears inside a segment. The URL is the raw
// href attribute, not resolved or normalized; a segment may repeat a URL.
type LinkRef struct {
	URL    string `json:"url"`
	Anchor string `json:"anchor"`
}

// Segment is one structural text unit of the source document (paragraph,
// list item, heading, table cell) with its outbound links in document order.
type Segment struct {
	Text  string    `json:"text"`
	Links []LinkRef `json:"links"`
}
