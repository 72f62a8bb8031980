package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"tulika/internal/domain/services"
	"tulika/internal/middleware"
	"tulika/internal/repository/memory"
	serviceAuth "tulika/internal/service/auth"
	serviceNotes "tulika/internal/service/notes"
)

// newTestServer wires the full handler stack over in-memory repositories,
// mirroring the route setup in cmd/server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	authService := serviceAuth.NewService(
		memory.NewUserRepository(),
		memory.NewSessionRepository(),
		time.Hour,
		logger,
	)
	noteService := serviceNotes.NewService(
		memory.NewItemRepository(),
		memory.NewTransactionManager(),
		services.ShallowCascade,
		logger,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", Health)
	mux.HandleFunc("/api/auth", NewAuthHandler(authService, logger).Handle)

	requireSession := middleware.RequireSession(authService)
	notesHandler := NewNotesHandler(noteService, logger)
	mux.Handle("/api/notes", requireSession(http.HandlerFunc(notesHandler.Handle)))

	server := httptest.NewServer(middleware.Recovery(logger)(mux))
	t.Cleanup(server.Close)
	return server
}

// postForm sends a form-encoded action request, carrying the session
// cookie when one is given.
func postForm(t *testing.T, server *httptest.Server, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, server.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func get(t *testing.T, server *httptest.Server, path string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, server.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

// registerAndLogin creates an account and returns the session cookie.
func registerAndLogin(t *testing.T, server *httptest.Server, username string) *http.Cookie {
	t.Helper()

	resp := postForm(t, server, "/api/auth", url.Values{
		"action":   {"register"},
		"username": {username},
		"password": {"secret123"},
	}, nil)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["success"] != true {
		t.Fatalf("register failed: %v", body)
	}

	resp = postForm(t, server, "/api/auth", url.Values{
		"action":   {"login"},
		"username": {username},
		"password": {"secret123"},
	}, nil)
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

// createItem issues a create action and returns the new id as it appears
// on the wire.
func createItem(t *testing.T, server *httptest.Server, cookie *http.Cookie, name, kind, parentID string) string {
	t.Helper()

	form := url.Values{
		"action": {"create"},
		"name":   {name},
		"kind":   {kind},
	}
	if parentID != "" {
		form.Set("parent_id", parentID)
	}

	resp := postForm(t, server, "/api/notes", form, cookie)
	var body struct {
		Success bool            `json:"success"`
		ID      json.RawMessage `json:"id"`
	}
	decodeBody(t, resp, &body)
	if !body.Success {
		t.Fatalf("create %q failed", name)
	}
	return strings.Trim(string(body.ID), `"`)
}
