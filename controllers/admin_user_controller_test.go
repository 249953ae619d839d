package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"jobboard-http-service/models"
)

func TestGetAdminUserNotFoundBody(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/admin-users/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
	if body["error"] != "User not found" {
		t.Fatalf("error body = %v, want User not found", body)
	}
}

func TestGetAdminUserDatabaseErrorSurfacesMessage(t *testing.T) {
	r, db := newTestServer(t)

	// Force a real database failure, as opposed to a missing row
	if err := db.Migrator().DropTable(&models.AdminUser{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/admin-users/some-id", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", w.Code, w.Body.String())
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "no such table") {
		t.Fatalf("error body = %q, want the driver message", msg)
	}
}

func TestCreateAdminUserHidesPasswordHash(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/admin-users", map[string]interface{}{
		"name":     "Jane HR",
		"email":    "jane@example.com",
		"role":     "hr",
		"password": "Secret@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if body["user_id"] == "" || body["user_id"] == nil {
		t.Fatalf("expected a generated user_id, got %v", body)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("password material leaked in response: %s", w.Body.String())
	}
}

func TestDeleteAdminUserIsIdempotent(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/admin-users", map[string]interface{}{
		"name":     "Jane HR",
		"email":    "jane@example.com",
		"password": "Secret@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	userID := body["user_id"].(string)

	for i := 0; i < 2; i++ {
		w, body = doJSON(t, r, http.MethodDelete, "/api/admin-users/"+userID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("delete #%d status = %d, want 200: %s", i+1, w.Code, w.Body.String())
		}
		if body["message"] != "User deleted" {
			t.Fatalf("delete #%d body = %v", i+1, body)
		}
	}
}

func TestUpdateAdminUserKeepsPasswordWhenOmitted(t *testing.T) {
	r, db := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/admin-users", map[string]interface{}{
		"name":     "Jane HR",
		"email":    "jane@example.com",
		"password": "Secret@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	userID := body["user_id"].(string)

	var before struct{ PasswordHash string }
	db.Table("admin_users").Select("password_hash").Where("user_id = ?", userID).Scan(&before)

	w, _ = doJSON(t, r, http.MethodPut, "/api/admin-users/"+userID, map[string]interface{}{
		"name":  "Jane Renamed",
		"email": "jane@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}

	var after struct{ PasswordHash string }
	db.Table("admin_users").Select("password_hash").Where("user_id = ?", userID).Scan(&after)
	if after.PasswordHash != before.PasswordHash {
		t.Fatal("password hash changed on an update without a password")
	}
}
