package datagov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxErrorBody caps how much of an unclassified error body is carried in
// an HTTPError.
const maxErrorBody = 512

// errorBody covers both error shapes Data.gov returns: a list of
// parameter errors under "errors", or a single coded error under "error".
type errorBody struct {
	Errors *struct {
		Error []struct {
			Status    int    `json:"status"`
			Parameter string `json:"parameter"`
			Message   string `json:"message"`
		} `json:"error"`
	} `json:"errors"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// classify inspects a response's status code and body and returns the
// matching typed error, or nil when the body carries no recognized error
// shape. Pure function, no I/O.
func classify(statusCode int, body []byte) error {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not JSON; an HTTPError carrying the raw status is raised by
		// the caller for non-2xx responses.
		return nil
	}

	if statusCode == http.StatusBadRequest && payload.Errors != nil && len(payload.Errors.Error) > 0 {
		first := payload.Errors.Error[0]
		if first.Message != "" {
			return &ParameterError{Parameter: first.Parameter, Message: first.Message}
		}
	}

	if payload.Error != nil && payload.Error.Code != "" {
		return &APIError{
			Code:       payload.Error.Code,
			Message:    payload.Error.Message,
			StatusCode: statusCode,
		}
	}

	return nil
}

// apiRequest performs exactly one HTTP GET against uri with the given
// query parameters and returns the raw body on success. Non-2xx responses
// and error-shaped bodies come back as classified errors; no retries, no
// caching.
func (c *Client) apiRequest(ctx context.Context, uri string, params url.Values) ([]byte, error) {
	requestURL := uri
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", uri).Msg("Making Data.gov API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := classify(resp.StatusCode, body); err != nil {
		c.logger.Debug().Int("status", resp.StatusCode).Err(err).Msg("Data.gov API returned an error")
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	return body, nil
}
