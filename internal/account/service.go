// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

// Package account provides administrative management of user records.
//
// # Architecture
//
// It reuses the [auth.UserRepository] contract rather than defining its own
// storage layer: user records are owned by the auth domain, this package is
// an administrative surface over them. Passwords always pass through the
// hasher here; a plaintext password never reaches storage.
package account

import (
	"context"
	"fmt"

	"github.com/ngocphan/merco/internal/auth"
	"github.com/ngocphan/merco/internal/platform/dberr"
	"github.com/ngocphan/merco/internal/platform/sec"
	"github.com/ngocphan/merco/pkg/pagination"
	"github.com/ngocphan/merco/pkg/uuidv7"
)

// Service implements user-record management use cases.
type Service struct {
	userRepository auth.UserRepository
}

// NewService constructs a new account [Service].
func NewService(userRepo auth.UserRepository) *Service {
	return &Service{userRepository: userRepo}
}

// List returns a page of user records plus pagination metadata input.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*auth.User, int, error) {
	return service.userRepository.List(ctx, params)
}

// Get returns the user record with the given ID.
func (service *Service) Get(ctx context.Context, id string) (*auth.User, error) {
	return service.userRepository.FindByID(ctx, id)
}

// CreateInput holds the data for an administratively created user.
type CreateInput struct {
	Username string
	Password string
}

// Create persists a new user record with a freshly hashed password.
//
// A duplicate username — whether caught by the unique constraint or not —
// surfaces as [auth.ErrDuplicateUsername].
func (service *Service) Create(ctx context.Context, input CreateInput) (*auth.User, error) {
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user := &auth.User{
		ID:           uuidv7.New(),
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		if dberr.IsConflict(err) {
			return nil, auth.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("account_service_create_failed: %w", err)
	}

	return user, nil
}

// UpdateInput holds the mutable fields of a user record.
//
// Password is optional: when empty the stored hash is left untouched.
type UpdateInput struct {
	Username string
	Password string
}

// Update modifies an existing user record.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*auth.User, error) {
	user, err := service.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username

	if input.Password != "" {
		hashedPassword, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := service.userRepository.Update(ctx, user); err != nil {
		if dberr.IsConflict(err) {
			return nil, auth.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	return user, nil
}

// Delete permanently removes a user record.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.userRepository.Delete(ctx, id)
}
