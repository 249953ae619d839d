package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticatedUser is the normalized user object returned on login,
// regardless of which table the account lives in
type AuthenticatedUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// InterfaceAuthService defines the authentication service interface
type InterfaceAuthService interface {
	Register(username, email, password string) error
	Login(email, password string) (string, *AuthenticatedUser, error)
}

// AuthService handles registration and login against both the job seeker
// and back-office account tables
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

// Register creates a job seeker account with a bcrypt-hashed password
func (s *AuthService) Register(username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	return s.DB.Create(&user).Error
}

// Login looks the email up in users first, then falls back to admin_users.
// On success it returns a one-hour token and the normalized user.
func (s *AuthService) Login(email, password string) (string, *AuthenticatedUser, error) {
	// Job seeker accounts first
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return "", nil, ErrInvalidCredentials
		}

		id := strconv.FormatUint(uint64(user.ID), 10)
		token, err := s.JWT.GenerateToken(id, user.Email)
		if err != nil {
			return "", nil, err
		}

		return token, &AuthenticatedUser{
			ID:    id,
			Name:  user.Username,
			Email: user.Email,
			Role:  "jobseeker",
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	// Fall back to back-office accounts
	var admin models.AdminUser
	err = s.DB.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	role := admin.Role
	if role == "" {
		role = "admin"
	}

	token, err := s.JWT.GenerateToken(admin.UserID, admin.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &AuthenticatedUser{
		ID:        admin.UserID,
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      role,
		AvatarURL: admin.AvatarURL,
	}, nil
}
