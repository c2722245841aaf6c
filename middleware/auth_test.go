package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authProtected(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("BASIC_AUTH_USER", "clerk")
	t.Setenv("BASIC_AUTH_PASS", "stamp-everything")
	t.Setenv("BASIC_AUTH_PASS_HASH", "")
	return BasicAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestBasicAuthMissingHeader(t *testing.T) {
	handler := authProtected(t)
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", rec.Code)
	}
}

func TestBasicAuthWrongCredentials(t *testing.T) {
	handler := authProtected(t)
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.SetBasicAuth("clerk", "wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad password, got %d", rec.Code)
	}
}

func TestBasicAuthValidCredentials(t *testing.T) {
	handler := authProtected(t)
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.SetBasicAuth("clerk", "stamp-everything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid credentials, got %d", rec.Code)
	}
}

func TestBasicAuthMissingConfig(t *testing.T) {
	t.Setenv("BASIC_AUTH_USER", "")
	t.Setenv("BASIC_AUTH_PASS", "")
	t.Setenv("BASIC_AUTH_PASS_HASH", "")
	handler := BasicAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.SetBasicAuth("anyone", "anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when credentials unset, got %d", rec.Code)
	}
}
