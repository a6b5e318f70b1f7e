// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ngocphan/merco/internal/platform/apperr"
	"github.com/ngocphan/merco/internal/platform/constants"
	"github.com/ngocphan/merco/internal/platform/dberr"
	"github.com/ngocphan/merco/internal/platform/sec"
	"github.com/ngocphan/merco/pkg/uuidv7"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account, embedded as the subject claim.
	//   - username: The username of the account, embedded as a custom claim.
	//   - timeToLive: The duration before the token expires.
	GenerateToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Sentinel failures of the authentication flow.
//
// ErrInvalidCredentials is shared by the user-not-found and wrong-password
// branches of Login: both failures must be observably identical to the
// caller (same status, same message) so that response content cannot be
// used to enumerate registered usernames.
var (
	// ErrDuplicateUsername is returned when registration targets a taken
	// username. The public contract surfaces this as a plain 400.
	ErrDuplicateUsername = &apperr.AppError{
		Code:       "DUPLICATE_USERNAME",
		Message:    "Username is already taken",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidCredentials = apperr.Unauthorized("Invalid username or password")
)

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Password string
}

// Register validates, hashes, and persists a brand new user account.
//
// # Flow
//  1. Check username availability. Failing here avoids the cost of an
//     unnecessary bcrypt hash; no attempt is made to hide the duplicate
//     outcome from the caller, since registration reveals it by design.
//  2. Hash the password and persist the new account.
//  3. A unique-constraint violation on insert is converted to the same
//     [ErrDuplicateUsername] as the pre-check: the pre-check is not
//     race-free and the database constraint is authoritative.
//
// On success the created [*User] is returned; the caller must never expose
// its PasswordHash (the entity omits it from JSON).
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	_, err := service.userRepository.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.userRepository.Create(ctx, user); err != nil {
		// Lost the check-then-insert race: a concurrent registration claimed
		// the username between our pre-check and this insert.
		if dberr.IsConflict(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult represents a successfully authenticated login.
type LoginResult struct {
	Token string
	User  *User
}

// Login validates user credentials and issues a bearer token.
//
// # Flow
//  1. Lookup user by username.
//  2. Verify password hash using bcrypt's constant-time comparison.
//  3. Generate a JWT valid for [constants.AccessTokenTTL].
//
// Steps 1 and 2 fail with the identical [ErrInvalidCredentials] value;
// signing failures in step 3 are internal errors and are never disguised
// as bad credentials.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	// ── 1. Fetch User Profile ─────────────────────────────────────────────

	user, err := service.userRepository.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.GenerateToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{
		Token: token,
		User:  user,
	}, nil
}
