package ogscrape

// Document is a read-only view over a parsed HTML document.
// The engine borrows it for the duration of one Extract call.
type Document interface {
	// Find returns the nodes matching a CSS selector in document order.
	// An invalid selector matches nothing.
	Find(selector string) []Node
}

// Node is a single element of a Document.
type Node interface {
	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the node.
	Text() string
}

// Parser turns decoded HTML text into a Document.
type Parser interface {
	Parse(html string) (Document, error)
}
