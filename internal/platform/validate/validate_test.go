// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngocphan/merco/internal/platform/apperr"
	"github.com/ngocphan/merco/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Merco", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestContainsDangerousContent exercises the XSS denylist against both hostile
payloads and harmless product names that merely look suspicious.
*/
func TestContainsDangerousContent(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		dangerous bool
	}{
		{"plain_name", "Wireless Mouse", false},
		{"empty", "", false},
		{"angle_brackets_only", "2 < 3 > 1", false},
		{"script_open", "<script>alert(1)</script>", true},
		{"script_uppercase", "<SCRIPT>alert(1)</SCRIPT>", true},
		{"script_embedded", "Nice<script>x</script>Lamp", true},
		{"javascript_scheme", "javascript:alert(document.cookie)", true},
		{"onerror_attr", "x onerror=alert(1)", true},
		{"onload_attr", "<body onload=steal()>", true},
		{"onclick_attr", "<div onclick=evil()>", true},
		{"iframe", "<iframe src=//evil.example>", true},
		{"img_with_onerror", `<img src=x onerror="alert(1)">`, true},
		{"img_without_handler", "<imgsrc note: not a real tag", false},
		{"onerror_word_alone", "an error occurred", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dangerous, validate.ContainsDangerousContent(tt.input))
		})
	}
}

/*
TestValidator_SafeText verifies the denylist integrates with the chain and
reports the offending field.
*/
func TestValidator_SafeText(t *testing.T) {
	v := &validate.Validator{}
	err := v.SafeText("description", "<script>alert(1)</script>").Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "description", ae.Details[0].Field)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "ngoc").
		MinLen("username", "ngoc", 3).
		MaxLen("username", "ngoc", 10).
		SafeText("bio", "Just a regular shopper").
		NonNegative("price", 12.50).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").          // Fails
		MinLen("username", "a", 5).        // Fails
		NonNegative("price", -1).          // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_OneOf tests the allowed-set rule used for product status.
*/
func TestValidator_OneOf(t *testing.T) {
	valid := &validate.Validator{}
	assert.NoError(t, valid.OneOf("status", "active", "active", "inactive").Err())

	invalid := &validate.Validator{}
	assert.Error(t, invalid.OneOf("status", "archived", "active", "inactive").Err())
}

/*
TestValidator_UUID tests the UUID format rule.
*/
func TestValidator_UUID(t *testing.T) {
	valid := &validate.Validator{}
	assert.NoError(t, valid.UUID("id", "0190cafe-0000-7000-8000-0123456789ab").Err())

	invalid := &validate.Validator{}
	assert.Error(t, invalid.UUID("id", "not-a-uuid").Err())
}
