// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

// Package catalog implements the product catalog of the Merco storefront.
package catalog

import "time"

// ProductStatus represents the sale lifecycle state of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"   // Visible and purchasable.
	ProductStatusInactive ProductStatus = "inactive" // Hidden from the storefront.
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// Product represents one catalog row.
//
// # Rules
//   - Name passes the dangerous-content denylist before every write; the
//     stored value is plain text, output escaping happens at render time.
//   - Slug is generated from the name and unique across the catalog.
//   - CreatedBy references the account that created the row, when known.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	StockQuantity int           `json:"stock_quantity"`
	Status        ProductStatus `json:"status"`
	CreatedBy     *string       `json:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
