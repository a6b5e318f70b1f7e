// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package auth

import (
	"context"

	"github.com/ngocphan/merco/pkg/pagination"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]);
// tests use an in-memory fake.
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername returns the account with the given username.
	//
	// Returns [apperr.NotFound] if the username is available.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create persists a brand-new user account to the storage.
	//
	// The users table carries a unique constraint on username; a violation
	// surfaces as a Conflict error. Callers must treat that Conflict the
	// same as their own duplicate pre-check, because check-then-insert is
	// not atomic under concurrent registrations.
	Create(ctx context.Context, user *User) error

	// Update persists changes to username and/or password hash.
	Update(ctx context.Context, user *User) error

	// ExistsByID reports whether an account with the given ID exists.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Delete permanently removes the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	Delete(ctx context.Context, id string) error

	// List returns a page of accounts ordered by creation time, plus the
	// total count for pagination metadata.
	List(ctx context.Context, params pagination.Params) ([]*User, int, error)
}
