package datagov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Code: "CODE", Message: "message", StatusCode: 418}
	assert.Equal(t, "CODE: message", err.Error())
}

func TestAPIErrorIs(t *testing.T) {
	tests := []struct {
		code          string
		wantRateLimit bool
		wantBadKey    bool
	}{
		{"OVER_RATE_LIMIT", true, false},
		{"API_KEY_INVALID", false, true},
		{"CODE", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &APIError{Code: tt.code, Message: "message"}
			assert.Equal(t, tt.wantRateLimit, err.Is(ErrRateLimitExceeded))
			assert.Equal(t, tt.wantBadKey, err.Is(ErrInvalidAPIKey))
		})
	}
}

func TestParameterErrorMessage(t *testing.T) {
	err := &ParameterError{Parameter: "name", Message: "something"}
	assert.Equal(t, "something", err.Error())
}

func TestHTTPErrorMessage(t *testing.T) {
	assert.Equal(t, "unexpected HTTP status 500: oh no",
		(&HTTPError{StatusCode: 500, Body: "oh no"}).Error())
	assert.Equal(t, "unexpected HTTP status 502",
		(&HTTPError{StatusCode: 502}).Error())
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionList, "list"},
		{ActionFoodReport, "reports"},
		{ActionNutrientReport, "nutrients"},
		{ActionSearch, "search"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.String())
		})
	}
}
