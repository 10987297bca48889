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

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs size and charset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*ogscrape.Response, error) {
				return &ogscrape.Response{URL: url, HTML: "<html></html>", Charset: "utf-8"}, nil
			},
		}

		f := ogsslog.NewLoggingFetcher(inner, logger)
		resp, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", resp.HTML)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "charset=utf-8")
		assert.Contains(t, output, "level=INFO")
		assert.NotContains(t, output, "final_url")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*ogscrape.Response, error) {
				return nil, errors.New("timeout")
			},
		}

		f := ogsslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=timeout")
		assert.NotContains(t, output, "bytes=")
	})

	t.Run("logs final URL after redirect", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*ogscrape.Response, error) {
				return &ogscrape.Response{URL: "https://example.com/new", HTML: "<html></html>"}, nil
			},
		}

		f := ogsslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://example.com/old")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "final_url=https://example.com/new")
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := ogsslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
