package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/micromarket/backend/internal/events"
	"github.com/micromarket/backend/internal/hash"
	"github.com/micromarket/backend/internal/logging"
	"github.com/micromarket/backend/internal/models"
	"github.com/micromarket/backend/internal/repo"
	"github.com/micromarket/backend/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *events.Producer
}

type AuthResult struct {
	AccessToken string
	User        *models.User
}

func (s *AuthService) Register(ctx context.Context, email, name, password, userType string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password required: %w", ErrValidation)
	}
	if userType != "vendor" && userType != "supplier" {
		return nil, fmt.Errorf("user_type must be vendor or supplier: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        email,
		Name:         name,
		UserType:     userType,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		return nil, err
	}

	token, err := tokens.Issue(user.ID.String(), user.Email, s.JWTSecret)
	if err != nil {
		l.Error("register_error", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":      "user_registered",
		"user_id":   user.ID.String(),
		"user_type": user.UserType,
	})

	l.Info("user_registered", "user_id", user.ID)
	return &AuthResult{AccessToken: token, User: &user}, nil
}

// Login reports one ErrInvalidCredentials for both an unknown email and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, repo.ErrInvalidCredentials
	}

	token, err := tokens.Issue(user.ID.String(), user.Email, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID.String(),
	})

	l.Info("user_logged_in", "user_id", user.ID)
	return &AuthResult{AccessToken: token, User: user}, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
