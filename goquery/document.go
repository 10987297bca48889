// Package goquery implements ogscrape.Document and ogscrape.Scraper on top
// of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ogscrape"
)

// Ensure Document implements ogscrape.Document at compile time.
var _ ogscrape.Document = (*Document)(nil)

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses decoded HTML text.
func NewDocument(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ogscrape.Errorf(ogscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Find returns the nodes matching a CSS selector in document order.
func (d *Document) Find(selector string) []ogscrape.Node {
	sel := d.doc.Find(selector)
	nodes := make([]ogscrape.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, node{sel: s})
	})
	return nodes
}

// node adapts a single-element selection.
type node struct {
	sel *goquery.Selection
}

func (n node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n node) Text() string {
	return n.sel.Text()
}

// Ensure Parser implements ogscrape.Parser at compile time.
var _ ogscrape.Parser = (*Parser)(nil)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses decoded HTML text.
func (p *Parser) Parse(html string) (ogscrape.Document, error) {
	return NewDocument(html)
}
