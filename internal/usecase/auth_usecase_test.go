package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/interview-prep/internal/navigation"
	"github.com/fadilmartias/interview-prep/internal/repository"
	"github.com/fadilmartias/interview-prep/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth() *AuthUsecase {
	creds := service.NewCredentialService(repository.NewMemoryUserRepository())
	creds.Cost = bcrypt.MinCost
	return NewAuthUsecase(creds)
}

func TestSignupScenario(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	s, _ := navigation.Transition(navigation.Initial(), navigation.Action{Kind: navigation.GoToSignup})
	s, notice, err := uc.Signup(ctx, s, "alice", "secret123", "secret123")
	require.NoError(t, err)
	assert.Equal(t, navigation.Initial(), s)
	assert.Equal(t, navigation.Notice{Level: navigation.LevelSuccess, Message: navigation.MsgSignupSucceeded}, notice)

	s, _ = navigation.Transition(s, navigation.Action{Kind: navigation.GoToSignup})
	s, notice, err = uc.Signup(ctx, s, "alice", "secret123", "secret123")
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.Equal(t, navigation.ScreenSignup, s.Screen)
	assert.Equal(t, navigation.MsgSignupFailed, notice.Message)
}

func TestSignupPasswordMismatch(t *testing.T) {
	s := navigation.State{Screen: navigation.ScreenSignup}
	s, notice, err := newAuth().Signup(context.Background(), s, "bob", "secret123", "secret124")

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.Equal(t, navigation.ScreenSignup, s.Screen)
	assert.Equal(t, navigation.MsgPasswordMismatch, notice.Message)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()
	signup := navigation.State{Screen: navigation.ScreenSignup}
	_, _, err := uc.Signup(ctx, signup, "alice", "secret123", "secret123")
	require.NoError(t, err)

	s, notice, err := uc.Login(ctx, navigation.Initial(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, navigation.Initial(), s)
	assert.Equal(t, navigation.MsgInvalidCredentials, notice.Message)

	s, notice, err = uc.Login(ctx, navigation.Initial(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, navigation.State{Authenticated: true, Screen: navigation.ScreenMain}, s)
	assert.True(t, notice.Empty())
}

type countingCreds struct {
	authCalls int
}

func (c *countingCreds) Authenticate(context.Context, string, string) (bool, error) {
	c.authCalls++
	return true, nil
}

func (c *countingCreds) Register(context.Context, string, string) (bool, error) {
	return false, errors.New("should not be called")
}

func TestLoginIgnoredOutsideLoginScreen(t *testing.T) {
	creds := &countingCreds{}
	uc := NewAuthUsecase(creds)

	main := navigation.State{Authenticated: true, Screen: navigation.ScreenMain}
	s, _, err := uc.Login(context.Background(), main, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, main, s)

	signup := navigation.State{Screen: navigation.ScreenSignup}
	s, _, err = uc.Login(context.Background(), signup, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, signup, s)
	assert.Zero(t, creds.authCalls)
}

func TestSignupStorageError(t *testing.T) {
	uc := NewAuthUsecase(&countingCreds{})
	s, notice, err := uc.Signup(context.Background(), navigation.State{Screen: navigation.ScreenSignup}, "a", "b", "b")
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.Equal(t, navigation.ScreenSignup, s.Screen)
	assert.Equal(t, navigation.LevelError, notice.Level)
}
