package controllers_test

import (
	"net/http"
	"testing"
)

func TestCreateActivityLogValidation(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/activity-logs", map[string]interface{}{
		"admin_user_id": "admin-1",
		// action missing
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if body["error"] != "admin_user_id and action are required" {
		t.Fatalf("error body = %v", body)
	}
}

func TestActivityLogListIsPaginated(t *testing.T) {
	r, _ := newTestServer(t)

	for _, action := range []string{"created job posting", "deleted job posting"} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/activity-logs", map[string]interface{}{
			"admin_user_id": "admin-1",
			"action":        action,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
		}
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/activity-logs?page=1&page_size=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", w.Code, w.Body.String())
	}

	pagination, ok := body["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("pagination missing: %v", body)
	}
	if pagination["total"] != float64(2) {
		t.Fatalf("total = %v, want 2", pagination["total"])
	}

	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v, want one row", body["data"])
	}

	// Newest first
	first := data[0].(map[string]interface{})
	if first["action"] != "deleted job posting" {
		t.Fatalf("first row = %v, want the most recent entry", first)
	}
}

func TestActivityLogListDefaultsPagination(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/activity-logs", map[string]interface{}{
		"admin_user_id": "admin-1",
		"action":        "updated content",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/activity-logs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", w.Code, w.Body.String())
	}

	pagination, ok := body["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("pagination missing: %v", body)
	}
	if pagination["page"] != float64(1) {
		t.Fatalf("page = %v, want the default 1", pagination["page"])
	}
	if pagination["page_size"] != float64(50) {
		t.Fatalf("page_size = %v, want the default 50", pagination["page_size"])
	}
}
