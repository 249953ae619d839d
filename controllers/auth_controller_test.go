package controllers_test

import (
	"net/http"
	"testing"

	"jobboard-http-service/models"
	"jobboard-http-service/utils"
)

func TestRegisterAndLoginJobSeeker(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "jdoe",
		"email":    "jdoe@example.com",
		"password": "Secret@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if body["message"] != "User registered successfully" {
		t.Fatalf("register body = %v", body)
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jdoe@example.com",
		"password": "Secret@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if token, ok := body["token"].(string); !ok || token == "" {
		t.Fatalf("expected a token, got %v", body["token"])
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected a user object, got %v", body["user"])
	}
	if user["role"] != "jobseeker" {
		t.Fatalf("role = %v, want jobseeker", user["role"])
	}
}

func TestLoginAdminWithoutRoleDefaultsToAdmin(t *testing.T) {
	r, db := newTestServer(t)

	hash, err := utils.HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	admin := models.AdminUser{
		UserID:       "admin-1",
		Name:         "No Role",
		Email:        "norole@example.com",
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to insert admin user: %v", err)
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "norole@example.com",
		"password": "Secret@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", w.Code, w.Body.String())
	}
	user := body["user"].(map[string]interface{})
	if user["role"] != "admin" {
		t.Fatalf("role = %v, want admin", user["role"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "jdoe",
		"email":    "jdoe@example.com",
		"password": "Secret@123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jdoe@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401: %s", w.Code, w.Body.String())
	}
	if body["error"] != "Invalid email or password" {
		t.Fatalf("error body = %v", body)
	}
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
