package pandora

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient builds a client pointed at a test server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session, err := NewSession()
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	client, err := NewClient(Config{
		Session: session,
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, server
}

// loginMux builds a handler that serves the CSRF bootstrap and login
// endpoints the way the service does.
func loginMux(t *testing.T, csrfToken, authToken string) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: csrfToken, Path: "/"})
	})
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-CsrfToken"); got != csrfToken {
			t.Errorf("login: expected X-CsrfToken %q, got %q", csrfToken, got)
		}
		if cookie, err := r.Cookie("csrftoken"); err != nil || cookie.Value != csrfToken {
			t.Error("login: expected csrftoken cookie to be replayed")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authToken":"` + authToken + `","listenerId":"L1","username":"bob@example.com","webname":"bob","hifiAvailable":true}`))
	})
	return mux
}

// TestNewClientDefaults tests the configuration defaults.
func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected base URL %q, got %q", DefaultBaseURL, client.baseURL)
	}
	if client.audioFormat != DefaultAudioFormat {
		t.Errorf("expected audio format %q, got %q", DefaultAudioFormat, client.audioFormat)
	}
	if client.csrfToken != "" || client.authToken != "" {
		t.Error("expected both session tokens to start empty")
	}
	if client.Session() == nil {
		t.Error("expected a session to be created")
	}
}

// TestCallAttachesTokensAfterLogin tests that a login immediately
// followed by any authenticated call carries both tokens as headers.
func TestCallAttachesTokensAfterLogin(t *testing.T) {
	const (
		csrfToken = "csrf-abc"
		authToken = "auth-xyz"
	)

	mux := loginMux(t, csrfToken, authToken)
	mux.HandleFunc("/api/v1/station/getStations", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-CsrfToken"); got != csrfToken {
			t.Errorf("expected X-CsrfToken %q, got %q", csrfToken, got)
		}
		if got := r.Header.Get("X-AuthToken"); got != authToken {
			t.Errorf("expected X-AuthToken %q, got %q", authToken, got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stations":[{"stationId":"st-1","name":"Test Radio","isShuffle":true}],"totalStations":1}`))
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	listener, err := client.Auth().Login(ctx, "bob@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if listener.AuthToken != authToken {
		t.Errorf("expected auth token %q, got %q", authToken, listener.AuthToken)
	}
	if !listener.HiFiAvailable {
		t.Error("expected hifiAvailable to be decoded")
	}

	stations, err := client.Stations().List(ctx)
	if err != nil {
		t.Fatalf("getStations failed: %v", err)
	}
	if len(stations) != 1 {
		t.Fatalf("expected 1 station, got %d", len(stations))
	}
	if stations[0].StationID != "st-1" || stations[0].Name != "Test Radio" {
		t.Errorf("unexpected station: %+v", stations[0])
	}
	if !stations[0].IsShuffle {
		t.Error("expected shuffle flag to be decoded")
	}
}
