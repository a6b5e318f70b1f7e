// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngocphan/merco/pkg/slug"
)

/*
TestFrom verifies slug generation across Unicode, punctuation, and spacing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Nice Lamp", "nice-lamp"},
		{"accents", "Café Crème", "cafe-creme"},
		{"punctuation", "Lamp: Deluxe Edition!", "lamp-deluxe-edition"},
		{"multiple_spaces", "Nice    Lamp", "nice-lamp"},
		{"leading_trailing", "  Nice Lamp  ", "nice-lamp"},
		{"numbers", "Lamp 3000", "lamp-3000"},
		{"empty", "", ""},
		{"symbols_only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
