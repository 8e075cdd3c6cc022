package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// JSONRequest builds an httptest request with a JSON body and optional
// session cookie.
func JSONRequest(t *testing.T, method, target string, body any, cookie *http.Cookie) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// SessionCookie pulls the named session cookie out of a response,
// failing the test when it is absent.
func SessionCookie(t *testing.T, res *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("Response carried no %q cookie", name)
	return nil
}

// SignUp registers a new account through the HTTP surface and returns
// the authenticated session cookie.
func SignUp(t *testing.T, app *fiber.App, cookieName, username, password string) *http.Cookie {
	t.Helper()
	req := JSONRequest(t, http.MethodPost, "/signup", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Signup request failed: %v", err)
	}
	AssertStatus(t, res, http.StatusCreated)
	return SessionCookie(t, res, cookieName)
}

// LogIn authenticates an existing account and returns the session cookie.
func LogIn(t *testing.T, app *fiber.App, cookieName, username, password string) *http.Cookie {
	t.Helper()
	req := JSONRequest(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	AssertStatus(t, res, http.StatusOK)
	return SessionCookie(t, res, cookieName)
}
