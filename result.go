package ogscrape

import (
	"bytes"
	"encoding/json"
)

// Result is the assembled metadata of one document. Fields maps field
// names to string, int, bool, []string, []any or []Media values; unset
// fields are absent. Custom meta tags live under FieldCustomMetaTags as a
// map[string]any of string or []string values.
type Result struct {
	Success bool
	Fields  map[string]any
}

// Assemble merges coerced single values, grouped media and custom tag
// values into a Result and prunes everything unset. Custom values are
// stored under FieldCustomMetaTags only when at least one matched.
func Assemble(singles map[string]any, multi map[string][]Media, custom map[string]any) *Result {
	fields := make(map[string]any, len(singles)+len(multi)+1)
	for name, v := range singles {
		fields[name] = v
	}
	for name, v := range multi {
		fields[name] = v
	}
	if len(custom) > 0 {
		fields[FieldCustomMetaTags] = custom
	}
	return &Result{Fields: Prune(fields)}
}

// Prune removes every unset entry from m at any depth: nil values, empty
// strings, zero Media records and containers left empty. Set siblings are
// kept as they are. Prune returns a new map and never returns nil.
func Prune(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if pv, ok := prune(v); ok {
			out[k] = pv
		}
	}
	return out
}

func prune(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case string:
		return v, v != ""
	case map[string]any:
		out := Prune(v)
		return out, len(out) > 0
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if pv, ok := prune(item); ok {
				out = append(out, pv)
			}
		}
		return out, len(out) > 0
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	case []Media:
		out := make([]Media, 0, len(v))
		for _, m := range v {
			if m != (Media{}) {
				out = append(out, m)
			}
		}
		return out, len(out) > 0
	default:
		return v, true
	}
}

// Has reports whether a field is set.
func (r *Result) Has(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// Len returns the number of set fields.
func (r *Result) Len() int {
	return len(r.Fields)
}

// String returns a string field.
func (r *Result) String(name string) (string, bool) {
	s, ok := r.Fields[name].(string)
	return s, ok
}

// Int returns an integer field.
func (r *Result) Int(name string) (int, bool) {
	n, ok := r.Fields[name].(int)
	return n, ok
}

// Bool returns a boolean field.
func (r *Result) Bool(name string) (bool, bool) {
	b, ok := r.Fields[name].(bool)
	return b, ok
}

// Strings returns a multi-valued text field.
func (r *Result) Strings(name string) []string {
	return toStrings(r.Fields[name])
}

// Media returns a grouped media field.
func (r *Result) Media(name string) []Media {
	m, _ := r.Fields[name].([]Media)
	return m
}

// CustomMetaTags returns the custom meta tag values, or nil if none matched.
func (r *Result) CustomMetaTags() map[string]any {
	m, _ := r.Fields[FieldCustomMetaTags].(map[string]any)
	return m
}

// MarshalJSON encodes the result as one flat object holding success and
// every set field.
func (r *Result) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		m[k] = v
	}
	m[FieldSuccess] = r.Success
	return json.Marshal(m)
}

// UnmarshalJSON decodes the flat object produced by MarshalJSON, restoring
// integers, string lists and media records to their Go types.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Success = false
	r.Fields = make(map[string]any, len(raw))
	for key, msg := range raw {
		if key == FieldSuccess {
			if err := json.Unmarshal(msg, &r.Success); err != nil {
				return err
			}
			continue
		}
		v, err := decodeField(msg)
		if err != nil {
			return err
		}
		r.Fields[key] = v
	}
	return nil
}

func decodeField(msg json.RawMessage) (any, error) {
	var media []Media
	if err := json.Unmarshal(msg, &media); err == nil && len(media) > 0 && media[0].URL != "" {
		return media, nil
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// normalize converts generic JSON values back to the types the engine
// produces.
func normalize(v any) any {
	switch v := v.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		for k, item := range v {
			v[k] = normalize(item)
		}
		return v
	case []any:
		if s := toStrings(v); len(s) == len(v) {
			return s
		}
		for i, item := range v {
			v[i] = normalize(item)
		}
		return v
	default:
		return v
	}
}

func toStrings(v any) []string {
	switch v := v.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}
