// Package ogscrape extracts social metadata from HTML documents.
// It maps Open Graph, Twitter Card, HTML fallback and caller-defined meta
// tags onto named fields and assembles them into a single Result.
//
// This package contains domain types, interfaces and the pure extraction
// engine following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, sqlite/, http/).
package ogscrape

// Options configures a single extraction.
type Options struct {
	// OnlyGetOpenGraphInfo drops every fallback source (title, meta
	// description, Twitter, HTML) from the built-in fields.
	// Custom meta tags are not affected.
	OnlyGetOpenGraphInfo bool `json:"onlyGetOpenGraphInfo" yaml:"onlyGetOpenGraphInfo"`

	// CustomMetaTags are extra meta tags to extract into the
	// customMetaTags result entry.
	CustomMetaTags []CustomMetaTag `json:"customMetaTags" yaml:"customMetaTags"`

	// Charset is the charset declared by the transport (e.g. the
	// Content-Type header). Used when the document declares none.
	Charset string `json:"charset" yaml:"charset"`
}

// Extract resolves every field of the rule table against doc.
// Custom meta tags are validated before the document is touched.
// The returned Result has Success unset; callers mark it after Extract returns.
//
// Extract keeps no state between calls and is safe for concurrent use.
func Extract(doc Document, opts Options) (*Result, error) {
	if err := ValidateCustomMetaTags(opts.CustomMetaTags); err != nil {
		return nil, err
	}

	table := NewRuleTable(opts.OnlyGetOpenGraphInfo).Extend(opts.CustomMetaTags)
	x := newExtractor(doc)

	singles := make(map[string]any)
	multi := make(map[string][]Media)
	custom := make(map[string]any)

	for _, rule := range table.Rules() {
		raw := x.extract(rule)
		if len(raw) == 0 {
			continue
		}

		switch {
		case rule.Custom:
			if v, ok := collect(rule, raw); ok {
				custom[rule.Name] = v
			}
		case rule.Grouped:
			if media := GroupMedia(raw); len(media) > 0 {
				multi[rule.Name] = media
			}
		default:
			if v, ok := collect(rule, raw); ok {
				singles[rule.Name] = v
			}
		}
	}

	if _, ok := singles[FieldCharset]; !ok && opts.Charset != "" {
		singles[FieldCharset] = opts.Charset
	}

	return Assemble(singles, multi, custom), nil
}

// collect coerces raw values according to the rule's type and cardinality.
// Multi-valued text fields come back as []string.
func collect(rule FieldRule, raw []RawValue) (any, bool) {
	if rule.Cardinality == Single {
		return Coerce(raw[0].Text, rule.ValueType)
	}

	if rule.ValueType == TypeString || rule.ValueType == TypeURL {
		values := make([]string, 0, len(raw))
		for _, r := range raw {
			values = append(values, r.Text)
		}
		return values, len(values) > 0
	}

	values := make([]any, 0, len(raw))
	for _, r := range raw {
		if v, ok := Coerce(r.Text, rule.ValueType); ok {
			values = append(values, v)
		}
	}
	return values, len(values) > 0
}
