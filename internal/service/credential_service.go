package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/interview-prep/internal/model"
	"github.com/fadilmartias/interview-prep/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// CredentialService verifies and registers username/password pairs.
type CredentialService struct {
	users repository.UserStore
	Cost  int
}

func NewCredentialService(users repository.UserStore) *CredentialService {
	return &CredentialService{users: users, Cost: bcrypt.DefaultCost}
}

// Authenticate reports whether password matches the stored hash for username.
// The error is only set for storage failures.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// Register creates an account. It returns false when the username is taken or
// the credentials are not acceptable.
func (s *CredentialService) Register(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	err = s.users.Create(ctx, &model.User{Username: username, PasswordHash: string(hash)})
	if errors.Is(err, repository.ErrUsernameTaken) {
		log.Printf("Registration rejected: username %q already exists", username)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	log.Printf("Registered user %q", username)
	return true, nil
}
