package ogscrape

import (
	"net"
	"net/url"
	"strings"
)

// IsURLValid reports whether raw is an http or https URL with a host that
// has a top-level domain (or is an IP address). The scheme may be omitted;
// protocol-relative URLs are rejected.
func IsURLValid(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "//") {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	if host == "" || strings.HasSuffix(host, ".") || strings.Contains(host, "_") {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return isTLD(labels[len(labels)-1])
}

func isTLD(label string) bool {
	if strings.HasPrefix(label, "xn--") {
		return len(label) > 4
	}
	if len(label) < 2 {
		return false
	}
	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// NormalizeURL validates raw and prefixes http:// when no scheme is given.
func NormalizeURL(raw string) (string, error) {
	if !IsURLValid(raw) {
		return "", Errorf(EINVALID, "Invalid URL: %q", raw)
	}
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	return raw, nil
}
