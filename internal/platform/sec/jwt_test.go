// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngocphan/merco/internal/platform/sec"
)

const testIssuer = "merco.test"

func newTestService(t *testing.T, secret string) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(secret, testIssuer)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_EmptySecret verifies that an empty signing key is refused.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", testIssuer)
	assert.Error(t, err)
}

/*
TestTokenService_RoundTrip verifies that a generated token carries the user
identity back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestService(t, "unit-test-secret")

	token, err := service.GenerateToken("user-123", "ngoc", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "ngoc", claims.Username)
	assert.Equal(t, testIssuer, claims.Issuer)

	// Expiry must be in the future, roughly issuance + TTL.
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

/*
TestTokenService_Expired verifies that a token past its TTL is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestService(t, "unit-test-secret")

	// A negative TTL produces a token that is already expired.
	token, err := service.GenerateToken("user-123", "ngoc", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongKey verifies that tokens signed with a different secret
fail verification.
*/
func TestTokenService_WrongKey(t *testing.T) {
	issuingService := newTestService(t, "secret-A")
	verifyingService := newTestService(t, "secret-B")

	token, err := issuingService.GenerateToken("user-123", "ngoc", time.Hour)
	require.NoError(t, err)

	_, err = verifyingService.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Malformed verifies that garbage input is rejected.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := newTestService(t, "unit-test-secret")

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.VerifyToken(input)
		assert.Error(t, err, "input %q must be rejected", input)
	}
}
