package service

import (
	"context"
	"testing"
	"time"

	"ironmanage_backend/internal/auth/password"
	"ironmanage_backend/internal/auth/repository"
	"ironmanage_backend/internal/auth/transport"
	"ironmanage_backend/platform/apperr"
	"ironmanage_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type fakeRepo struct {
	createdEmail string
	user         repository.User
	getErr       error
}

func (f *fakeRepo) CreateUser(_ context.Context, email, passwordHash, companyName string) (repository.User, error) {
	f.createdEmail = email
	return repository.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash, CompanyName: companyName}, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, _ string) (repository.User, error) {
	if f.getErr != nil {
		return repository.User{}, f.getErr
	}
	return f.user, nil
}

type testConfig struct{}

func (testConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (testConfig) GetAccessTokenTTL() time.Duration { return time.Hour }

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, testConfig{}, logger.New("development"))

	_, err := svc.Register(context.Background(), transport.RegisterRequest{
		Email:       "  Herrero@Taller.COM ",
		Password:    "s3cret-pass",
		CompanyName: "Herrería San Martín",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createdEmail != "herrero@taller.com" {
		t.Errorf("stored email = %q, want lowercased and trimmed", repo.createdEmail)
	}
}

func TestLoginIssuesAccessToken(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	userID := uuid.New()
	repo := &fakeRepo{user: repository.User{
		ID:           userID,
		Email:        "herrero@taller.com",
		PasswordHash: hash,
		CompanyName:  "Herrería San Martín",
	}}
	svc := New(repo, testConfig{}, logger.New("development"))

	result, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "herrero@taller.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not a map")
	}
	if claims["sub"] != userID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], userID)
	}
	if claims["type"] != "access" {
		t.Errorf("type = %v, want access", claims["type"])
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := password.Hash("correct-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	unknownEmail := &fakeRepo{getErr: apperr.NotFound("user not found")}
	badPassword := &fakeRepo{user: repository.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hash}}

	for name, repo := range map[string]*fakeRepo{"unknown email": unknownEmail, "bad password": badPassword} {
		svc := New(repo, testConfig{}, logger.New("development"))
		_, err := svc.Login(context.Background(), transport.LoginRequest{Email: "a@b.com", Password: "wrong"})
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		typed, ok := err.(*apperr.Error)
		if !ok {
			t.Fatalf("%s: error is not typed", name)
		}
		if typed.Kind != apperr.KindUnauthorized || typed.Message != "invalid credentials" {
			t.Errorf("%s: got %v %q, want unauthorized invalid credentials", name, typed.Kind, typed.Message)
		}
	}
}
