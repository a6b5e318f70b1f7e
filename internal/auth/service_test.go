// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package auth_test

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngocphan/merco/internal/auth"
	"github.com/ngocphan/merco/internal/platform/apperr"
	"github.com/ngocphan/merco/internal/platform/sec"
	"github.com/ngocphan/merco/pkg/pagination"
)

// # Test Doubles

// memoryUserRepository is an in-memory [auth.UserRepository] used across the
// auth and account test suites. It enforces username uniqueness the way the
// real table's constraint does.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*auth.User // keyed by ID
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*auth.User)}
}

func (repo *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if user, ok := repo.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, user := range repo.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.users {
		if existing.Username == user.Username {
			return &apperr.AppError{Code: "CONFLICT", Message: "Resource already exists", HTTPStatus: http.StatusConflict}
		}
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	copied := *user
	repo.users[user.ID] = &copied
	return nil
}

func (repo *memoryUserRepository) Update(_ context.Context, user *auth.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}

	user.UpdatedAt = time.Now()
	copied := *user
	repo.users[user.ID] = &copied
	return nil
}

func (repo *memoryUserRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	_, ok := repo.users[id]
	return ok, nil
}

func (repo *memoryUserRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(repo.users, id)
	return nil
}

func (repo *memoryUserRepository) List(_ context.Context, params pagination.Params) ([]*auth.User, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all := make([]*auth.User, 0, len(repo.users))
	for _, user := range repo.users {
		copied := *user
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	total := len(all)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

// newAuthService wires a service against the in-memory repo and a real
// HS256 token service.
func newAuthService(t *testing.T) (*auth.Service, *memoryUserRepository) {
	t.Helper()

	repo := newMemoryUserRepository()
	tokenService, err := sec.NewTokenService("auth-service-test-secret", "merco.test")
	require.NoError(t, err)

	return auth.NewService(repo, tokenService), repo
}

// # Registration

/*
TestService_Register verifies the happy path: the account is persisted with a
bcrypt hash, never the plaintext.
*/
func TestService_Register(t *testing.T) {
	service, repo := newAuthService(t)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "ngoc",
		Password: "plaintext-password",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)

	stored, err := repo.FindByUsername(context.Background(), "ngoc")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-password", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("plaintext-password", stored.PasswordHash))
}

/*
TestService_Register_Duplicate verifies that a taken username is rejected with
the sentinel duplicate error (HTTP 400 contract).
*/
func TestService_Register_Duplicate(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "ngoc", Password: "pw-one"})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), auth.RegisterInput{Username: "ngoc", Password: "pw-two"})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrDuplicateUsername)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Equal(t, "Username is already taken", ae.Message)
}

// raceUserRepository simulates losing the check-then-insert race: the
// pre-check misses but the insert hits the unique constraint.
type raceUserRepository struct {
	*memoryUserRepository
}

func (repo *raceUserRepository) FindByUsername(_ context.Context, _ string) (*auth.User, error) {
	return nil, apperr.NotFound("User")
}

/*
TestService_Register_LostRace verifies that a unique-constraint conflict on
insert maps to the same duplicate error as the pre-check.
*/
func TestService_Register_LostRace(t *testing.T) {
	underlying := newMemoryUserRepository()
	tokenService, err := sec.NewTokenService("auth-service-test-secret", "merco.test")
	require.NoError(t, err)

	service := auth.NewService(&raceUserRepository{underlying}, tokenService)

	_, err = service.Register(context.Background(), auth.RegisterInput{Username: "ngoc", Password: "pw-one"})
	require.NoError(t, err)

	// The pre-check is blind, so this attempt reaches the insert and loses.
	_, err = service.Register(context.Background(), auth.RegisterInput{Username: "ngoc", Password: "pw-two"})
	assert.ErrorIs(t, err, auth.ErrDuplicateUsername)
}

// # Login

/*
TestService_Login verifies credential verification and token issuance.
*/
func TestService_Login(t *testing.T) {
	service, _ := newAuthService(t)

	registered, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "ngoc",
		Password: "correct-password",
	})
	require.NoError(t, err)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Username: "ngoc",
		Password: "correct-password",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, registered.ID, result.User.ID)

	// The issued token must verify and carry the user identity.
	verifier, err := sec.NewTokenService("auth-service-test-secret", "merco.test")
	require.NoError(t, err)
	claims, err := verifier.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.Subject)
	assert.Equal(t, "ngoc", claims.Username)
}

/*
TestService_Login_InvalidCredentials verifies that unknown-user and
wrong-password failures are observably identical, so responses cannot be used
to enumerate registered usernames.
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "ngoc",
		Password: "correct-password",
	})
	require.NoError(t, err)

	_, unknownUserErr := service.Login(context.Background(), auth.LoginInput{
		Username: "nobody",
		Password: "whatever",
	})
	_, wrongPasswordErr := service.Login(context.Background(), auth.LoginInput{
		Username: "ngoc",
		Password: "wrong-password",
	})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)

	// Identical sentinel value in both branches.
	assert.Equal(t, unknownUserErr, wrongPasswordErr)
	assert.ErrorIs(t, unknownUserErr, auth.ErrInvalidCredentials)

	ae := apperr.As(unknownUserErr)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusUnauthorized, ae.HTTPStatus)
	assert.Equal(t, "Invalid username or password", ae.Message)
}
