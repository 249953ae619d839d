package controllers_test

import (
	"net/http"
	"testing"
	"time"
)

func TestCreateSessionReturnsIDAndExpiry(t *testing.T) {
	r, _ := newTestServer(t)

	before := time.Now()
	w, body := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"user_id":   "user-1",
		"user_role": "jobseeker",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	sessionID, ok := body["session_id"].(string)
	if !ok || sessionID == "" {
		t.Fatalf("expected a session_id, got %v", body)
	}

	raw, ok := body["expires_at"].(string)
	if !ok {
		t.Fatalf("expected expires_at, got %v", body)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t.Fatalf("expires_at is not a timestamp: %v", err)
	}
	if expiresAt.Before(before.Add(59*time.Minute)) || expiresAt.After(time.Now().Add(61*time.Minute)) {
		t.Fatalf("expires_at = %v, want about one hour out", expiresAt)
	}

	// The row must be retrievable by id
	w, _ = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestGetSessionNotFoundBody(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/sessions/no-such-session", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
	if body["error"] != "Session not found" {
		t.Fatalf("error body = %v", body)
	}
}

func TestDeleteSessionTwiceReturns200(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"user_id": "user-1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	sessionID := body["session_id"].(string)

	for i := 0; i < 2; i++ {
		w, body = doJSON(t, r, http.MethodDelete, "/api/sessions/"+sessionID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("delete #%d status = %d, want 200: %s", i+1, w.Code, w.Body.String())
		}
		if body["message"] != "Session deleted" {
			t.Fatalf("delete #%d body = %v", i+1, body)
		}
	}
}

func TestCreateSessionRequiresUserID(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"user_role": "jobseeker",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}
