package ogscrape

// CustomMetaTag maps an arbitrary meta tag to a field of the
// customMetaTags result entry.
type CustomMetaTag struct {
	// Property is matched against the property or name attribute.
	Property string `json:"property" yaml:"property"`

	// FieldName is the key the value is stored under.
	FieldName string `json:"fieldName" yaml:"fieldName"`

	// Multiple collects every matching tag into a list instead of
	// keeping the first one.
	Multiple bool `json:"multiple" yaml:"multiple"`
}

// Validate returns an error if the tag is missing its property or field name.
func (t CustomMetaTag) Validate() error {
	if t.Property == "" {
		return Errorf(EINVALID, "custom meta tag property required")
	}
	if t.FieldName == "" {
		return Errorf(EINVALID, "custom meta tag field name required")
	}
	return nil
}

// ValidateCustomMetaTags checks every tag and returns ErrInvalidCustomMetaTags
// if any of them is invalid. An empty list is valid.
func ValidateCustomMetaTags(tags []CustomMetaTag) error {
	for _, tag := range tags {
		if err := tag.Validate(); err != nil {
			return ErrInvalidCustomMetaTags
		}
	}
	return nil
}

// customMetaTagKeys is the exact key set of a custom meta tag descriptor.
var customMetaTagKeys = []string{"property", "fieldName", "multiple"}

// ParseCustomMetaTag converts a loosely typed descriptor, such as one
// decoded from JSON or YAML, into a CustomMetaTag. The descriptor must be
// a map with exactly the keys property and fieldName (non-empty strings)
// and multiple (bool).
func ParseCustomMetaTag(v any) (CustomMetaTag, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return CustomMetaTag{}, Errorf(EINVALID, "custom meta tag must be an object, got %T", v)
	}
	if len(m) != len(customMetaTagKeys) {
		return CustomMetaTag{}, Errorf(EINVALID, "custom meta tag must have exactly the keys property, fieldName and multiple")
	}
	for _, key := range customMetaTagKeys {
		if _, ok := m[key]; !ok {
			return CustomMetaTag{}, Errorf(EINVALID, "custom meta tag missing %q", key)
		}
	}

	property, ok := m["property"].(string)
	if !ok || property == "" {
		return CustomMetaTag{}, Errorf(EINVALID, "custom meta tag property must be a non-empty string")
	}
	fieldName, ok := m["fieldName"].(string)
	if !ok || fieldName == "" {
		return CustomMetaTag{}, Errorf(EINVALID, "custom meta tag fieldName must be a non-empty string")
	}
	multiple, ok := m["multiple"].(bool)
	if !ok {
		return CustomMetaTag{}, Errorf(EINVALID, "custom meta tag multiple must be a boolean")
	}

	return CustomMetaTag{Property: property, FieldName: fieldName, Multiple: multiple}, nil
}

// ParseCustomMetaTags converts a loosely typed list of descriptors.
// The whole list is rejected if any entry is malformed. nil is an empty list.
func ParseCustomMetaTags(v any) ([]CustomMetaTag, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, Errorf(EINVALID, "custom meta tags must be a list, got %T", v)
	}

	tags := make([]CustomMetaTag, 0, len(list))
	for i, item := range list {
		tag, err := ParseCustomMetaTag(item)
		if err != nil {
			return nil, Errorf(EINVALID, "custom meta tag %d: %s", i, ErrorMessage(err))
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// IsCustomMetaTagsValid reports whether v is a valid list of custom meta
// tag descriptors.
func IsCustomMetaTagsValid(v any) bool {
	_, err := ParseCustomMetaTags(v)
	return err == nil
}
