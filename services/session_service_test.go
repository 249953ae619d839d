package services

import (
	"errors"
	"testing"
	"time"

	"jobboard-http-service/models"
)

func TestCreateSessionExpiryIsExactlyOneHour(t *testing.T) {
	svc := NewSessionService(newTestDB(t), newTestConfig(), nil)

	session, err := svc.CreateSession("user-1", "jobseeker", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if session.SessionID == "" {
		t.Fatal("expected a generated session id")
	}
	if got := session.ExpiresAt.Sub(session.CreatedAt); got != time.Hour {
		t.Fatalf("expires_at - created_at = %v, want exactly 1h", got)
	}
	if session.IPAddress != "127.0.0.1" || session.UserAgent != "test-agent" {
		t.Fatalf("request-derived fields not persisted: %+v", session)
	}
}

func TestGetSessionByIDNotFound(t *testing.T) {
	svc := NewSessionService(newTestDB(t), newTestConfig(), nil)

	_, err := svc.GetSessionByID("no-such-session")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSessionIsIdempotent(t *testing.T) {
	svc := NewSessionService(newTestDB(t), newTestConfig(), nil)

	session, err := svc.CreateSession("user-1", "jobseeker", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := svc.DeleteSession(session.SessionID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteSession(session.SessionID); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestGetSessionsByUserIDIncludesExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db, newTestConfig(), nil)

	// One live session through the service
	if _, err := svc.CreateSession("user-1", "jobseeker", "127.0.0.1", "test-agent"); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	// One long-expired row inserted directly
	expired := models.Session{
		SessionID: "expired-session",
		UserID:    "user-1",
		UserRole:  "jobseeker",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("failed to insert expired session: %v", err)
	}

	sessions, err := svc.GetSessionsByUserID("user-1")
	if err != nil {
		t.Fatalf("GetSessionsByUserID failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2 (expired rows are not filtered)", len(sessions))
	}
}
