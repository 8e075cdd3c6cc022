package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// ParseJSON decodes a response body into a generic map and closes it.
func ParseJSON(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", body, err)
	}
	return payload
}

// AssertStatus fails the test when the response status differs from want.
func AssertStatus(t *testing.T, res *http.Response, want int) {
	t.Helper()
	if res.StatusCode != want {
		t.Fatalf("Expected status %d, got %d", want, res.StatusCode)
	}
}

// AssertErrorType checks the "type" field of the error envelope.
func AssertErrorType(t *testing.T, payload map[string]any, want string) {
	t.Helper()
	got, _ := payload["type"].(string)
	if got != want {
		t.Fatalf("Expected error type %q, got %q", want, got)
	}
}

// AssertMessage checks the "message" field of a response payload.
func AssertMessage(t *testing.T, payload map[string]any, want string) {
	t.Helper()
	got, _ := payload["message"].(string)
	if got != want {
		t.Fatalf("Expected message %q, got %q", want, got)
	}
}
