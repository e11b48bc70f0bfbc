package datagov

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the authority all Data.gov requests are built against.
const DefaultBaseURL = "http://api.nal.usda.gov/"

// Client holds the immutable per-service configuration for one Data.gov
// API and builds requests against it. It is safe for concurrent use; each
// call owns its own request/response lifecycle.
type Client struct {
	baseURL    string
	uriPart    string
	key        string
	useFormat  bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client for the Data.gov service living under uriPart
// (e.g. "usda/ndb"). A trailing slash on uriPart is stripped.
func NewClient(uriPart, key string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if uriPart == "" {
		return nil, fmt.Errorf("data.gov URI part is required")
	}
	if key == "" {
		return nil, fmt.Errorf("data.gov API key is required")
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		uriPart:    strings.TrimRight(uriPart, "/"),
		key:        key,
		useFormat:  true,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BuildURI returns the full request URI for an action. Pure, no I/O.
func (c *Client) BuildURI(action Action) string {
	return c.baseURL + c.uriPart + "/" + action.String()
}

// RunRequest performs one GET for the action with the client's api_key (and
// format=json unless disabled) attached to params, and returns the decoded
// JSON body unchanged. Classification errors propagate from the executor.
func (c *Client) RunRequest(ctx context.Context, action Action, params url.Values) (map[string]any, error) {
	body, err := c.apiRequest(ctx, c.BuildURI(action), c.withAuth(params))
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

// Get performs the same request path as RunRequest but decodes the body
// into v. Used by service clients that know the response shape.
func (c *Client) Get(ctx context.Context, action Action, params url.Values, v any) error {
	body, err := c.apiRequest(ctx, c.BuildURI(action), c.withAuth(params))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// withAuth copies params and attaches the API credential and format flag.
// The caller's values are never mutated.
func (c *Client) withAuth(params url.Values) url.Values {
	out := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	out.Set("api_key", c.key)
	if c.useFormat {
		out.Set("format", "json")
	}
	return out
}
