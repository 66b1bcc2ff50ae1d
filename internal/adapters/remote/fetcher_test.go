package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/humotica/kit/internal/adapters/remote"
	"github.com/humotica/kit/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Run("returns the document body", func(t *testing.T) {
		doc := `{"packages": {}}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(doc))
		}))
		defer srv.Close()

		fetcher := remote.NewFetcherWithURL(srv.URL)
		data, err := fetcher.Fetch(context.Background())

		require.NoError(t, err)
		assert.Equal(t, doc, string(data))
	})

	t.Run("non-2xx status is a fetch failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := remote.NewFetcherWithURL(srv.URL)
		_, err := fetcher.Fetch(context.Background())

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRegistryFetchFailed))
	})

	t.Run("unreachable host is a fetch failure", func(t *testing.T) {
		fetcher := remote.NewFetcherWithURL("http://127.0.0.1:1")
		_, err := fetcher.Fetch(context.Background())
		require.Error(t, err)
	})
}
