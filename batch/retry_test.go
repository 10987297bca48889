package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/ogscrape"
	"github.com/fwojciec/ogscrape/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("retries transient errors until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, url string) (*ogscrape.Response, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("connection reset")
			}
			return &ogscrape.Response{URL: url, HTML: "ok"}, nil
		}
		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, format)
		}

		resp, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.HTML)
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (*ogscrape.Response, error) {
			calls++
			return nil, errors.New("HTTP 503")
		}

		_, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{0, 0})

		require.EqualError(t, err, "HTTP 503")
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (*ogscrape.Response, error) {
			calls++
			return nil, ogscrape.Errorf(ogscrape.ENOTFOUND, "HTTP 404")
		}

		_, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{0, 0})

		assert.Equal(t, ogscrape.ENOTFOUND, ogscrape.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (*ogscrape.Response, error) {
			cancel()
			return nil, errors.New("timeout")
		}

		_, err := batch.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}
