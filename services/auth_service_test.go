package services

import (
	"errors"
	"testing"

	"jobboard-http-service/models"
	"jobboard-http-service/utils"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	if err := svc.Register("jdoe", "jdoe@example.com", "Secret@123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", "jdoe@example.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "Secret@123" {
		t.Fatal("password stored in plain text")
	}
	if !utils.CheckPasswordHash("Secret@123", user.Password) {
		t.Fatal("stored hash does not verify")
	}
}

func TestLoginJobSeekerRole(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	if err := svc.Register("jdoe", "jdoe@example.com", "Secret@123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, user, err := svc.Login("jdoe@example.com", "Secret@123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Role != "jobseeker" {
		t.Fatalf("role = %q, want jobseeker", user.Role)
	}
}

func TestLoginAdminRoleFallback(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	hash, err := utils.HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	admin := models.AdminUser{
		UserID:       "admin-1",
		Name:         "No Role",
		Email:        "norole@example.com",
		PasswordHash: hash,
		// Role deliberately empty
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to insert admin user: %v", err)
	}

	_, user, err := svc.Login("norole@example.com", "Secret@123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("role = %q, want admin fallback", user.Role)
	}
}

func TestLoginAdminRolePreserved(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	hash, _ := utils.HashPassword("Secret@123")
	admin := models.AdminUser{
		UserID:       "admin-2",
		Name:         "HR Person",
		Email:        "hr@example.com",
		Role:         "hr",
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to insert admin user: %v", err)
	}

	_, user, err := svc.Login("hr@example.com", "Secret@123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Role != "hr" {
		t.Fatalf("role = %q, want hr", user.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	if _, _, err := svc.Login("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}

	if err := svc.Register("jdoe", "jdoe@example.com", "Secret@123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.Login("jdoe@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password: got %v, want ErrInvalidCredentials", err)
	}
}
