package ports

import "context"

// RegistryFetcher retrieves the registry document from its remote source.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type RegistryFetcher interface {
	// Fetch downloads the current registry document under a bounded
	// timeout. Non-2xx responses and transport failures are errors.
	Fetch(ctx context.Context) ([]byte, error)
}
