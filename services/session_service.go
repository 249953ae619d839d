package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound is returned when a session id does not exist
var ErrSessionNotFound = errors.New("session not found")

// InterfaceSessionService defines the session service interface
type InterfaceSessionService interface {
	CreateSession(userID, userRole, ipAddress, userAgent string) (*models.Session, error)
	GetSessionByID(sessionID string) (*models.Session, error)
	DeleteSession(sessionID string) error
	GetSessionsByUserID(userID string) ([]models.Session, error)
}

// SessionService issues and reads session records. Sessions expire exactly
// one hour after creation; expired rows stay readable until deleted.
type SessionService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewSessionService creates a new session service. redisService may be nil,
// in which case all reads go straight to the database.
func NewSessionService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceSessionService {
	return &SessionService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// CreateSession persists a new session with a fixed one-hour expiry
func (s *SessionService) CreateSession(userID, userRole, ipAddress, userAgent string) (*models.Session, error) {
	now := time.Now()
	session := models.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		UserRole:  userRole,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: now,
		ExpiresAt: now.Add(1 * time.Hour),
	}

	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}

	// Cache-aside; a cache failure never fails the request
	if s.Redis != nil {
		if err := s.Redis.CacheSession(&session); err != nil {
			config.Warning("failed to cache session %s: %v", session.SessionID, err)
		}
	}

	return &session, nil
}

// GetSessionByID returns the session row, expired or not
func (s *SessionService) GetSessionByID(sessionID string) (*models.Session, error) {
	if s.Redis != nil {
		if session, err := s.Redis.GetCachedSession(sessionID); err == nil {
			return session, nil
		}
	}

	var session models.Session
	if err := s.DB.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSession deletes unconditionally; deleting an absent session is not
// an error
func (s *SessionService) DeleteSession(sessionID string) error {
	if err := s.DB.Where("session_id = ?", sessionID).Delete(&models.Session{}).Error; err != nil {
		return err
	}

	if s.Redis != nil {
		if err := s.Redis.DeleteCachedSession(sessionID); err != nil {
			config.Warning("failed to evict session %s from cache: %v", sessionID, err)
		}
	}
	return nil
}

// GetSessionsByUserID returns every session for a user, including expired
// ones
func (s *SessionService) GetSessionsByUserID(userID string) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
