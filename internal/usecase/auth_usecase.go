package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/fadilmartias/interview-prep/internal/navigation"
)

// Credentials is the external authority for username/password pairs.
type Credentials interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
	Register(ctx context.Context, username, password string) (bool, error)
}

type AuthUsecase struct {
	creds Credentials
}

func NewAuthUsecase(creds Credentials) *AuthUsecase {
	return &AuthUsecase{creds: creds}
}

// Login checks the credentials and moves the session to Main on success.
// The returned notice is what the login screen should show.
func (uc *AuthUsecase) Login(ctx context.Context, s navigation.State, username, password string) (navigation.State, navigation.Notice, error) {
	s = navigation.Resolve(s)
	if s.Authenticated || s.Screen != navigation.ScreenLogin {
		return s, navigation.Notice{}, nil
	}

	ok, err := uc.creds.Authenticate(ctx, username, password)
	if err != nil {
		log.Printf("Login for %q failed: %v", username, err)
		return s, Describe(err).Notice, fmt.Errorf("authenticate: %w", err)
	}
	if !ok {
		next, notice := navigation.Transition(s, navigation.Action{Kind: navigation.LoginFailed})
		return next, notice, ErrInvalidCredentials
	}

	next, notice := navigation.Transition(s, navigation.Action{Kind: navigation.LoginSucceeded})
	return next, notice, nil
}

// Signup registers a new account. A password mismatch is reported before the
// Credential Service is asked.
func (uc *AuthUsecase) Signup(ctx context.Context, s navigation.State, username, password, confirm string) (navigation.State, navigation.Notice, error) {
	s = navigation.Resolve(s)
	if s.Screen != navigation.ScreenSignup {
		return s, navigation.Notice{}, nil
	}

	if password != confirm {
		next, notice := navigation.Transition(s, navigation.Action{Kind: navigation.SignupPasswordMismatch})
		return next, notice, ErrPasswordMismatch
	}

	ok, err := uc.creds.Register(ctx, username, password)
	if err != nil {
		log.Printf("Signup for %q failed: %v", username, err)
		next, notice := navigation.Transition(s, navigation.Action{Kind: navigation.SignupFailed})
		return next, notice, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	if !ok {
		next, notice := navigation.Transition(s, navigation.Action{Kind: navigation.SignupFailed})
		return next, notice, ErrRegistrationFailed
	}

	next, notice := navigation.Transition(s, navigation.Action{Kind: navigation.SignupSucceeded})
	return next, notice, nil
}
