package ports

import "context"

// AdvisoryClient consults the remote advisory service for a supplementary,
// non-authoritative opinion. Implementations never return an error: every
// failure mode (timeout, connection refused, bad status) collapses into
// ok=false so that call sites are total functions.
//
//go:generate mockgen -source=advisory.go -destination=mocks/mock_advisory.go -package=mocks
type AdvisoryClient interface {
	// Ask sends a prompt and returns the response text. maxTokens caps the
	// response length. No retries: the advisory path is non-critical and a
	// retry would only add latency.
	Ask(ctx context.Context, prompt string, maxTokens int) (response string, ok bool)

	// Available probes the advisory endpoint, reporting whether it responds.
	Available(ctx context.Context) bool
}
