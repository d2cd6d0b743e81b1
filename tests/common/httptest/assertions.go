//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status code and, for 2xx responses with
// a non-nil target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
			"failed to decode response body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and that the error envelope
// message contains expectedErrorMsg (skipped when empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"failed to decode error body: %s", w.Body.String())

	if expectedErrorMsg != "" {
		require.Contains(t, envelope.Error.Message, expectedErrorMsg)
	}
}
