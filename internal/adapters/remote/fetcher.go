// Package remote implements the RegistryFetcher port over HTTP.
package remote

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/humotica/kit/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultRegistryURL is the well-known location of the published
	// registry document.
	DefaultRegistryURL = "https://humotica.com/packages/packages.json"

	fetchTimeout = 10 * time.Second
)

// Fetcher implements ports.RegistryFetcher against a fixed document URL.
type Fetcher struct {
	client *resty.Client
	url    string
}

// NewFetcher creates a Fetcher for the well-known registry URL.
func NewFetcher() *Fetcher {
	return NewFetcherWithURL(DefaultRegistryURL)
}

// NewFetcherWithURL creates a Fetcher for a custom document URL.
func NewFetcherWithURL(url string) *Fetcher {
	return &Fetcher{
		client: resty.New().SetTimeout(fetchTimeout),
		url:    url,
	}
}

// Fetch implements ports.RegistryFetcher.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(f.url)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryFetchFailed.Error())
	}

	if !resp.IsSuccess() {
		fetchErr := zerr.Wrap(domain.ErrRegistryFetchFailed, "remote returned non-success status")
		fetchErr = zerr.With(fetchErr, "status_code", resp.StatusCode())
		return nil, zerr.With(fetchErr, "url", f.url)
	}

	return resp.Body(), nil
}
