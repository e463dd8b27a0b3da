package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/triomphant75/Gestion-Absence/config"
	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/pkg/jwt"
)

func setupTestAuthService() (AuthService, *jwt.Manager, *testRepos) {
	repos := newTestRepos()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	svc := NewAuthService(repos.repo, jwtMgr, nil, zap.NewNop())
	return svc, jwtMgr, repos
}

func createTestAccount(repos *testRepos, email, password string, actif bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return repos.users.add(&model.User{
		Nom:        "Moreau",
		Prenom:     "Alice",
		Email:      email,
		MotDePasse: string(hash),
		Role:       model.RoleEtudiant,
		Actif:      actif,
	})
}

func TestLogin_Success(t *testing.T) {
	svc, _, repos := setupTestAuthService()
	user := createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "alice.moreau@etu.univ.fr",
		MotDePasse: "motdepasse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("expected Bearer, got %s", resp.TokenType)
	}
	if resp.ExpiresIn <= 0 {
		t.Errorf("expected a positive expires_in, got %d", resp.ExpiresIn)
	}
	if resp.User.UserID != user.UserID {
		t.Error("expected the logged-in user in the response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, repos := setupTestAuthService()
	createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "alice.moreau@etu.univ.fr",
		MotDePasse: "mauvais",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "personne@univ.fr",
		MotDePasse: "motdepasse",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, _, repos := setupTestAuthService()
	createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "alice.moreau@etu.univ.fr",
		MotDePasse: "motdepasse",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestRefresh_Success(t *testing.T) {
	svc, _, repos := setupTestAuthService()
	createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "alice.moreau@etu.univ.fr",
		MotDePasse: "motdepasse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected fresh tokens")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _, repos := setupTestAuthService()
	createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "alice.moreau@etu.univ.fr",
		MotDePasse: "motdepasse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: "not-a-token",
	})
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestLogout_WithoutRedis(t *testing.T) {
	svc, jwtMgr, repos := setupTestAuthService()
	user := createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", true)

	token, err := jwtMgr.GenerateAccessToken(user.UserID, string(user.Role), "", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	claims, err := jwtMgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	// Redis is nil in this setup; logout must still succeed.
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("Logout failed without redis: %v", err)
	}
}

func TestProfile(t *testing.T) {
	svc, _, repos := setupTestAuthService()
	user := createTestAccount(repos, "alice.moreau@etu.univ.fr", "motdepasse", true)

	got, err := svc.Profile(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got.Email != user.Email {
		t.Errorf("expected %s, got %s", user.Email, got.Email)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
