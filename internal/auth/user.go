// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

// Package auth implements the authentication and credential-validation flow.
//
// # Architecture
//
// The User entity here represents the "Truth" of the identity system.
// It has no dependencies on outer layers (like databases, APIs, or libraries),
// which keeps the core logic highly testable and resilient to technology changes.
package auth

import (
	"time"
)

// User represents a registered principal of the Merco platform.
//
// # Rules
//   - Username is unique and non-empty.
//   - PasswordHash is generated via bcrypt exclusively by the auth [Service];
//     it is never the plaintext password and is never logged.
//   - ID is assigned at creation time and immutable afterwards.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
