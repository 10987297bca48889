package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/ogscrape"
	"github.com/fwojciec/ogscrape/mock"
	ogsslog "github.com/fwojciec/ogscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		svc := ogsslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "site=https://example.com")
		assert.Contains(t, output, "include=0")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs filter pattern counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) ([]string, error) {
				return nil, nil
			},
		}
		filter, err := ogscrape.NewURLFilter([]string{"/blog/", "/news/"}, []string{"/draft/"})
		require.NoError(t, err)

		svc := ogsslog.NewLoggingSitemapService(inner, logger)
		_, err = svc.DiscoverURLs(context.Background(), "https://example.com", filter)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "include=2")
		assert.Contains(t, buf.String(), "exclude=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := ogsslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}
