package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/ogscrape"
)

// DefaultMaxSitemapURLs caps how many page URLs one discovery returns.
const DefaultMaxSitemapURLs = 50000

// Ensure SitemapService implements ogscrape.SitemapService.
var _ ogscrape.SitemapService = (*SitemapService)(nil)

// SitemapService lists page URLs from a site's sitemaps so they can be
// scraped in a batch.
type SitemapService struct {
	client  *http.Client
	maxURLs int
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, maxURLs: DefaultMaxSitemapURLs}
}

// WithMaxURLs returns a copy of the service that stops after n page URLs.
func (s *SitemapService) WithMaxURLs(n int) *SitemapService {
	c := *s
	c.maxURLs = n
	return &c
}

// DiscoverURLs returns the page URLs listed in the sitemaps of baseURL.
// Returns an empty slice (not nil) if no sitemaps are found.
//
// Sitemaps come from robots.txt Sitemap directives, else /sitemap.xml.
// Indexes are walked breadth first and each sitemap is read once; gzipped
// sitemaps are accepted. When baseURL has a path (e.g.
// https://example.com/blog/), only pages below it are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, ogscrape.Errorf(ogscrape.EINVALID, "invalid base URL %q", baseURL)
	}
	scope := strings.TrimSuffix(base.Path, "/")
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	queue, err := s.locate(ctx, root)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenPages := make(map[string]bool)
	seenSitemaps := make(map[string]bool)

	for len(queue) > 0 && len(urls) < s.maxURLs {
		sitemapURL := queue[0]
		queue = queue[1:]
		if seenSitemaps[sitemapURL] {
			continue
		}
		seenSitemaps[sitemapURL] = true

		children, pages, err := s.read(ctx, sitemapURL)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)

		for _, page := range pages {
			if seenPages[page] || !inScope(page, scope) || !filter.Match(page) {
				continue
			}
			seenPages[page] = true
			urls = append(urls, page)
			if len(urls) == s.maxURLs {
				break
			}
		}
	}

	return urls, nil
}

// locate returns the sitemaps declared in robots.txt, else /sitemap.xml if
// it exists, else nothing.
func (s *SitemapService) locate(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robotsURL); err == nil {
		sitemaps, err := robotsSitemaps(body)
		body.Close()
		if err == nil && len(sitemaps) > 0 {
			return sitemaps, nil
		}
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fallback, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		// Network errors mean no sitemap; cancellation does not.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	return []string{fallback}, nil
}

// robotsSitemaps extracts Sitemap directives, matched case-insensitively.
func robotsSitemaps(r io.Reader) ([]string, error) {
	var sitemaps []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if v := strings.TrimSpace(value); v != "" {
			sitemaps = append(sitemaps, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// read fetches one sitemap and returns the sitemaps it links to (for an
// index) and the page URLs it lists (for a urlset).
func (s *SitemapService) read(ctx context.Context, sitemapURL string) (children, pages []string, err error) {
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()

	r, err := maybeGunzip(body)
	if err != nil {
		return nil, nil, fmt.Errorf("decompressing %s: %w", sitemapURL, err)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, nil, fmt.Errorf("parsing sitemap XML %s: %w", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, fmt.Errorf("empty sitemap XML %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		return locs(root, "sitemap"), nil, nil
	default:
		return nil, locs(root, "url"), nil
	}
}

// locs returns the trimmed <loc> text of every child element named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// maybeGunzip unwraps gzip content detected by its magic number.
func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil || magic[0] != 0x1f || magic[1] != 0x8b {
		return br, nil
	}
	return gzip.NewReader(br)
}

// inScope reports whether rawURL's path is at or below scope, respecting
// path boundaries: /docs matches /docs and /docs/intro but not /documentation.
func inScope(rawURL, scope string) bool {
	if scope == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	p := strings.TrimSuffix(u.Path, "/")
	return p == scope || strings.HasPrefix(p, scope+"/")
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}
