package service

import (
	"context"
	"strings"
	"time"

	"ironmanage_backend/internal/auth/password"
	"ironmanage_backend/internal/auth/repository"
	"ironmanage_backend/internal/auth/transport"
	"ironmanage_backend/platform/apperr"
	"ironmanage_backend/platform/config"
	"ironmanage_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

const msgInvalidCredentials = "invalid credentials"

// Repository defines the storage operations the auth service depends on.
type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash, companyName string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
}

// Service provides account registration and sign-in.
type Service struct {
	repo Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
}

// New creates a new auth service.
func New(repo Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.RegisterResponse, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return transport.RegisterResponse{}, err
	}

	user, err := s.repo.CreateUser(ctx, strings.ToLower(strings.TrimSpace(req.Email)), hash, strings.TrimSpace(req.CompanyName))
	if err != nil {
		s.log.AuthEvent("register", req.Email, false, err.Error())
		return transport.RegisterResponse{}, err
	}

	s.log.AuthEvent("register", user.Email, true, "")
	return transport.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID.String(),
	}, nil
}

// Login verifies credentials and issues an HS256 access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.log.AuthEvent("login", req.Email, false, "unknown email")
		return transport.LoginResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		s.log.AuthEvent("login", req.Email, false, "bad password")
		return transport.LoginResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.signAccessToken(user.ID)
	if err != nil {
		return transport.LoginResponse{}, err
	}

	s.log.AuthEvent("login", user.Email, true, "")
	return transport.LoginResponse{
		Token: token,
		User: transport.UserSummary{
			ID:          user.ID.String(),
			Email:       user.Email,
			CompanyName: user.CompanyName,
		},
	}, nil
}

func (s *Service) signAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": accessTokenType,
		"exp":  now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":  now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
