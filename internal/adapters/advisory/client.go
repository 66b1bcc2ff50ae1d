// Package advisory implements the AdvisoryClient port against an
// Ollama-style text-generation endpoint.
package advisory

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	generatePath = "/api/generate"
	tagsPath     = "/api/tags"

	// modelName is the advisory model served behind the endpoint.
	modelName = "kit"

	// askTimeout bounds every advisory request. The advisory path is
	// non-authoritative, so expiry is abandonment, never an error.
	askTimeout = 5 * time.Second
)

// Client implements ports.AdvisoryClient. It performs single synchronous
// requests with a bounded timeout and no retries; every failure mode
// collapses into the unavailable signal.
type Client struct {
	client *resty.Client
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(askTimeout),
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	NumPredict int `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Ask implements ports.AdvisoryClient.
func (c *Client) Ask(ctx context.Context, prompt string, maxTokens int) (string, bool) {
	var out generateResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:   modelName,
			Prompt:  prompt,
			Stream:  false,
			Options: generateOptions{NumPredict: maxTokens},
		}).
		SetResult(&out).
		Post(generatePath)
	if err != nil || !resp.IsSuccess() {
		return "", false
	}

	// A success status with no decodable response field (wrong content
	// type, empty body) counts as unavailable, not as an empty opinion.
	if out.Response == "" {
		return "", false
	}

	return out.Response, true
}

// Available implements ports.AdvisoryClient.
func (c *Client) Available(ctx context.Context) bool {
	resp, err := c.client.R().SetContext(ctx).Get(tagsPath)
	return err == nil && resp.IsSuccess()
}
