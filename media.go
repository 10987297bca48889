package ogscrape

import (
	"path"
	"strings"
)

// Media is a grouped image, video, audio or player record.
type Media struct {
	URL    string `json:"url"`
	Type   string `json:"type,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

// GroupMedia folds a tagged value sequence into records. Every RoleURL
// value opens a new record; other roles attach to the open record and
// overwrite earlier values. Values seen before the first RoleURL are
// dropped. Records keep the order of their opening values.
func GroupMedia(values []RawValue) []Media {
	var g mediaGrouper
	for _, v := range values {
		g.add(v)
	}
	return g.records
}

// mediaGrouper has two states: no open record, and an open record (the
// last element of records) accepting sub-properties.
type mediaGrouper struct {
	records []Media
	open    bool
}

func (g *mediaGrouper) add(v RawValue) {
	if v.Role == RoleURL {
		g.records = append(g.records, Media{URL: v.Text, Type: TypeFromURL(v.Text)})
		g.open = true
		return
	}
	if !g.open {
		return
	}

	current := &g.records[len(g.records)-1]
	switch v.Role {
	case RoleWidth:
		if n, ok := Coerce(v.Text, TypeInteger); ok {
			current.Width = n.(int)
		}
	case RoleHeight:
		if n, ok := Coerce(v.Text, TypeInteger); ok {
			current.Height = n.(int)
		}
	case RoleType:
		current.Type = v.Text
	case RoleAlt:
		current.Alt = v.Text
	}
}

var imageTypes = map[string]bool{
	"apng": true, "bmp": true, "gif": true, "ico": true, "cur": true,
	"jpg": true, "jpeg": true, "jfif": true, "pjpeg": true, "pjp": true,
	"png": true, "svg": true, "tif": true, "tiff": true, "webp": true,
	"avif": true,
}

var videoAudioTypes = map[string]bool{
	"mp4": true, "m4v": true, "webm": true, "ogv": true, "ogg": true,
	"mov": true, "avi": true, "mkv": true, "flv": true, "3gp": true,
	"mp3": true, "m4a": true, "aac": true, "oga": true, "wav": true,
	"flac": true, "opus": true,
}

// TypeFromURL returns the file extension of the last path segment of a
// URL, ignoring any query or fragment. Recognized media extensions are
// lower-cased and anything else is returned unchanged. The host never
// counts as a segment, so a URL with an empty or root path, or whose last
// segment has no dot, has no type.
func TypeFromURL(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "//"); i == 0 || (i > 0 && s[i-1] == ':') {
		authority := s[i+2:]
		j := strings.IndexByte(authority, '/')
		if j < 0 {
			return ""
		}
		s = authority[j:]
	}
	if s == "" || strings.HasSuffix(s, "/") {
		return ""
	}
	s = path.Base(s)
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return ""
	}
	s = s[i+1:]

	lower := strings.ToLower(s)
	if imageTypes[lower] || videoAudioTypes[lower] {
		return lower
	}
	return s
}

// IsImageTypeValid reports whether ext is a recognized image extension.
func IsImageTypeValid(ext string) bool {
	return imageTypes[strings.ToLower(ext)]
}
