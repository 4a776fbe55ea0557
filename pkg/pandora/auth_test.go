package pandora

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// TestLoginMissingCSRFCookie tests that a login fails before sending
// credentials when the service does not set the csrftoken cookie.
func TestLoginMissingCSRFCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// HEAD succeeds but sets no cookie.
	})
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		t.Error("credentials must not be sent without a CSRF token")
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Auth().Login(context.Background(), "bob@example.com", "hunter2")
	if !errors.Is(err, ErrMissingCSRF) {
		t.Fatalf("expected ErrMissingCSRF, got %v", err)
	}
	if client.csrfToken != "" || client.authToken != "" {
		t.Error("failed login must leave tokens empty")
	}
}

// TestLoginRejectedLeavesStateUnchanged tests that a server-rejected
// login surfaces the API error and commits no tokens.
func TestLoginRejectedLeavesStateUnchanged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "csrf-abc", Path: "/"})
	})
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Wrong password","errorCode":1002,"errorString":"INVALID_LOGIN"}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Auth().Login(context.Background(), "bob@example.com", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Code != ErrCodeInvalidLogin {
		t.Errorf("expected code %d, got %d", ErrCodeInvalidLogin, apiErr.Code)
	}
	if client.csrfToken != "" || client.authToken != "" {
		t.Error("rejected login must leave tokens empty")
	}
}

// TestLogoutClearsTokens tests that a logout clears both session
// tokens.
func TestLogoutClearsTokens(t *testing.T) {
	mux := loginMux(t, "csrf-abc", "auth-xyz")
	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-AuthToken") != "auth-xyz" {
			t.Error("expected logout to carry the auth token")
		}
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	if _, err := client.Auth().Login(ctx, "bob@example.com", "hunter2"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if client.authToken == "" {
		t.Fatal("expected login to commit the auth token")
	}

	if err := client.Auth().Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if client.csrfToken != "" || client.authToken != "" {
		t.Error("expected logout to clear both tokens")
	}
}
