package ogscrape

// Vocabulary identifies the metadata standard a selector reads from.
type Vocabulary int

// Vocabularies known to the rule table.
const (
	VocabularyOpenGraph Vocabulary = iota
	VocabularyTwitter
	VocabularyHTML
	VocabularyCustom
)

// SelectorKind identifies the document construct a selector reads.
type SelectorKind int

// Selector kinds.
const (
	// SelectMeta matches <meta> by its property or name attribute,
	// case-insensitively, and reads content.
	SelectMeta SelectorKind = iota

	// SelectTitle reads the trimmed text of the first <title>.
	SelectTitle

	// SelectLink matches <link> whose rel contains Key and reads href.
	SelectLink

	// SelectElement matches the CSS selector Key and reads Attr.
	SelectElement

	// SelectContentType reads the charset parameter of
	// <meta http-equiv="content-type">.
	SelectContentType

	// SelectImage reads src of <img> elements with a recognized image type.
	SelectImage
)

// Role tags a raw value with its position inside a grouped record.
type Role int

// Roles used by the media grouper.
const (
	RoleValue Role = iota
	RoleURL
	RoleWidth
	RoleHeight
	RoleType
	RoleAlt
)

// Selector identifies one source of a field value.
type Selector struct {
	Kind       SelectorKind
	Key        string
	Attr       string
	Vocabulary Vocabulary
	Role       Role

	// Fallback selectors are dropped when only Open Graph data is wanted.
	Fallback bool
}

// Cardinality is the number of values a field holds.
type Cardinality int

// Cardinalities.
const (
	Single Cardinality = iota
	Multi
)

// ValueType is the semantic type a raw value is coerced to.
type ValueType int

// Value types.
const (
	TypeString ValueType = iota
	TypeInteger
	TypeBoolean
	TypeURL
)

// FieldRule describes how a single output field is resolved.
// Selectors are ordered by descending priority and never empty.
type FieldRule struct {
	Name        string
	Selectors   []Selector
	Cardinality Cardinality
	ValueType   ValueType

	// Grouped fields are built into []Media records.
	Grouped bool

	// Custom fields come from caller-supplied meta tags.
	Custom bool
}

// RuleTable is an immutable, ordered catalogue of field rules.
type RuleTable struct {
	rules []FieldRule
	index map[string]int
}

// NewRuleTable builds the built-in table. When onlyOpenGraph is set every
// fallback selector is removed; fields left without selectors are dropped.
func NewRuleTable(onlyOpenGraph bool) *RuleTable {
	builtin := builtinRules()
	rules := make([]FieldRule, 0, len(builtin))
	for _, rule := range builtin {
		if onlyOpenGraph {
			rule = withoutFallbacks(rule)
			if len(rule.Selectors) == 0 {
				continue
			}
		}
		rules = append(rules, rule)
	}
	return newRuleTable(rules)
}

func newRuleTable(rules []FieldRule) *RuleTable {
	t := &RuleTable{
		rules: rules,
		index: make(map[string]int, len(rules)),
	}
	for i, rule := range rules {
		if rule.Custom {
			continue
		}
		t.index[rule.Name] = i
	}
	return t
}

// Lookup returns the built-in rule for a field name.
func (t *RuleTable) Lookup(name string) (FieldRule, bool) {
	i, ok := t.index[name]
	if !ok {
		return FieldRule{}, false
	}
	return t.rules[i], true
}

// Rules returns the rules in evaluation order.
func (t *RuleTable) Rules() []FieldRule {
	rules := make([]FieldRule, len(t.rules))
	copy(rules, t.rules)
	return rules
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// Extend returns a new table with one rule per custom meta tag appended
// after the built-in rules. The receiver is not modified. Tags must have
// passed ValidateCustomMetaTags.
func (t *RuleTable) Extend(tags []CustomMetaTag) *RuleTable {
	if len(tags) == 0 {
		return t
	}

	rules := make([]FieldRule, len(t.rules), len(t.rules)+len(tags))
	copy(rules, t.rules)
	for _, tag := range tags {
		cardinality := Single
		if tag.Multiple {
			cardinality = Multi
		}
		rules = append(rules, FieldRule{
			Name: tag.FieldName,
			Selectors: []Selector{
				{Kind: SelectMeta, Key: tag.Property, Vocabulary: VocabularyCustom},
			},
			Cardinality: cardinality,
			ValueType:   TypeString,
			Custom:      true,
		})
	}
	return newRuleTable(rules)
}

func withoutFallbacks(rule FieldRule) FieldRule {
	selectors := make([]Selector, 0, len(rule.Selectors))
	for _, sel := range rule.Selectors {
		if !sel.Fallback {
			selectors = append(selectors, sel)
		}
	}
	rule.Selectors = selectors
	return rule
}
