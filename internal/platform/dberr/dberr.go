// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Error Mapping
//
//   - pgx.ErrNoRows           → apperr.NotFound
//   - SQLSTATE 23505 (unique) → apperr.Conflict
//   - anything else           → apperr.Internal
//
// The unique-violation mapping matters for correctness, not just ergonomics:
// check-then-insert flows (e.g. the duplicate-username pre-check during
// registration) are racy, and the database constraint is the source of truth.
// Callers must treat the Conflict returned here exactly like their own
// pre-check failure.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ngocphan/merco/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed operation for server-side logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		return &apperr.AppError{
			Code:       "CONFLICT",
			Message:    "Resource already exists",
			HTTPStatus: 409,
			Cause:      err,
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsConflict reports whether err was classified as a unique-constraint
// violation by [Wrap] (or is any other conflict-coded AppError).
func IsConflict(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "CONFLICT"
}
