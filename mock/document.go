package mock

import "github.com/fwojciec/ogscrape"

var _ ogscrape.Document = (*Document)(nil)

// Document is a mock implementation of ogscrape.Document.
type Document struct {
	FindFn func(selector string) []ogscrape.Node
}

func (d *Document) Find(selector string) []ogscrape.Node {
	return d.FindFn(selector)
}

var _ ogscrape.Node = Node{}

// Node is a static ogscrape.Node. Attrs holds the attributes the node
// has; an attribute set to "" is present but empty.
type Node struct {
	Attrs   map[string]string
	Content string
}

func (n Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

func (n Node) Text() string {
	return n.Content
}
