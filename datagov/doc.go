// Package datagov provides the generic request layer shared by all
// Data.gov API clients.
//
// A Client holds the immutable configuration for one service: the path
// segment it lives under, the API key, and whether to force JSON
// responses. Requests are built from a closed set of actions and executed
// one at a time; the response is either the decoded JSON body or a typed
// error classified from the HTTP status and error payload.
//
// # Usage
//
//	client, err := datagov.NewClient("usda/ndb", apiKey, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := client.RunRequest(ctx, datagov.ActionList, params)
//
// # Error Handling
//
// Errors returned by the API are classified into:
//
//   - ParameterError: the API rejected a query parameter value
//   - APIError: a named API error; OVER_RATE_LIMIT and API_KEY_INVALID
//     match ErrRateLimitExceeded and ErrInvalidAPIKey through errors.Is
//   - HTTPError: a non-2xx response with no recognized error shape
//
//	_, err := client.RunRequest(ctx, datagov.ActionSearch, params)
//	if errors.Is(err, datagov.ErrRateLimitExceeded) {
//	    // back off and try later
//	}
//
// The client never retries and performs exactly one network call per
// invocation; recovery is the caller's responsibility.
package datagov
