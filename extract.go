package ogscrape

import (
	"mime"
	"strings"
)

// RawValue is an uncoerced value harvested from the document, tagged
// with the role of the selector that produced it.
type RawValue struct {
	Role Role
	Text string
}

// ExtractField resolves a single rule against doc.
//
// Single fields take the first non-empty node of the first selector that
// has one. Multi fields collect every non-empty node of every primary
// selector, higher priority first and document order within a selector;
// fallback selectors are only consulted while nothing has been collected.
// Nodes without content are skipped, so an unmatched field returns nil.
func ExtractField(doc Document, rule FieldRule) []RawValue {
	return newExtractor(doc).extract(rule)
}

// metaTag is a <meta> element keyed by its property or name attribute.
type metaTag struct {
	key     string
	content string
}

// extractor resolves rules against one document. Meta elements are read
// once since almost every rule consults them.
type extractor struct {
	doc   Document
	metas []metaTag
}

func newExtractor(doc Document) *extractor {
	x := &extractor{doc: doc}
	for _, n := range doc.Find("meta") {
		key, ok := n.Attr("property")
		if !ok || strings.TrimSpace(key) == "" {
			key, ok = n.Attr("name")
		}
		if !ok {
			continue
		}
		content, _ := n.Attr("content")
		x.metas = append(x.metas, metaTag{
			key:     strings.ToLower(strings.TrimSpace(key)),
			content: content,
		})
	}
	return x
}

func (x *extractor) extract(rule FieldRule) []RawValue {
	if rule.Cardinality == Single {
		for _, sel := range rule.Selectors {
			if values := x.values(sel); len(values) > 0 {
				return values[:1]
			}
		}
		return nil
	}

	var values []RawValue
	for _, t := range tiers(rule.Selectors) {
		if t.fallback && satisfied(rule, values) {
			continue
		}
		values = append(values, x.tierValues(t)...)
	}
	return values
}

// satisfied reports whether values already answer rule. A grouped field
// needs at least one URL, since sub-properties alone form no record.
func satisfied(rule FieldRule, values []RawValue) bool {
	if !rule.Grouped {
		return len(values) > 0
	}
	for _, v := range values {
		if v.Role == RoleURL {
			return true
		}
	}
	return false
}

// tier is a run of selectors evaluated in one pass. Consecutive meta
// selectors of the same vocabulary share a tier so that grouped
// sub-properties keep their document interleaving.
type tier struct {
	selectors []Selector
	fallback  bool
}

func tiers(selectors []Selector) []tier {
	var out []tier
	for _, sel := range selectors {
		if n := len(out); n > 0 && sel.Kind == SelectMeta {
			last := &out[n-1]
			prev := last.selectors[len(last.selectors)-1]
			if prev.Kind == SelectMeta && prev.Vocabulary == sel.Vocabulary && last.fallback == sel.Fallback {
				last.selectors = append(last.selectors, sel)
				continue
			}
		}
		out = append(out, tier{selectors: []Selector{sel}, fallback: sel.Fallback})
	}
	return out
}

func (x *extractor) tierValues(t tier) []RawValue {
	if len(t.selectors) == 1 || t.selectors[0].Kind != SelectMeta {
		var values []RawValue
		for _, sel := range t.selectors {
			values = append(values, x.values(sel)...)
		}
		return values
	}

	var values []RawValue
	for _, m := range x.metas {
		if isBlank(m.content) {
			continue
		}
		for _, sel := range t.selectors {
			if m.key == strings.ToLower(sel.Key) {
				values = append(values, RawValue{Role: sel.Role, Text: m.content})
				break
			}
		}
	}
	return values
}

// values returns every non-empty value a selector yields, in document order.
func (x *extractor) values(sel Selector) []RawValue {
	var texts []string

	switch sel.Kind {
	case SelectMeta:
		key := strings.ToLower(sel.Key)
		for _, m := range x.metas {
			if m.key == key && !isBlank(m.content) {
				texts = append(texts, m.content)
			}
		}
	case SelectTitle:
		for _, n := range x.doc.Find(sel.Key) {
			if text := strings.TrimSpace(n.Text()); text != "" {
				texts = append(texts, text)
				break
			}
		}
	case SelectLink:
		for _, n := range x.doc.Find("link[rel]") {
			rel, _ := n.Attr("rel")
			if !hasToken(rel, sel.Key) {
				continue
			}
			if href, ok := n.Attr(sel.Attr); ok && !isBlank(href) {
				texts = append(texts, href)
			}
		}
	case SelectElement:
		for _, n := range x.doc.Find(sel.Key) {
			if v, ok := n.Attr(sel.Attr); ok && !isBlank(v) {
				texts = append(texts, v)
			}
		}
	case SelectContentType:
		for _, n := range x.doc.Find("meta[http-equiv]") {
			equiv, _ := n.Attr("http-equiv")
			if !strings.EqualFold(strings.TrimSpace(equiv), sel.Key) {
				continue
			}
			content, _ := n.Attr(sel.Attr)
			if _, params, err := mime.ParseMediaType(content); err == nil && !isBlank(params["charset"]) {
				texts = append(texts, params["charset"])
			}
		}
	case SelectImage:
		for _, n := range x.doc.Find(sel.Key) {
			src, ok := n.Attr(sel.Attr)
			if ok && !isBlank(src) && IsImageTypeValid(TypeFromURL(src)) {
				texts = append(texts, src)
			}
		}
	}

	values := make([]RawValue, 0, len(texts))
	for _, text := range texts {
		values = append(values, RawValue{Role: sel.Role, Text: text})
	}
	return values
}

// hasToken reports whether a space-separated attribute contains token,
// ignoring case.
func hasToken(attr, token string) bool {
	for _, f := range strings.Fields(attr) {
		if strings.EqualFold(f, token) {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
