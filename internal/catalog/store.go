// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package catalog

import (
	"context"
	"time"

	"github.com/ngocphan/merco/pkg/pagination"
)

// ProductRepository defines the data access contract for catalog rows.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresProductRepository]);
// tests use an in-memory fake.
type ProductRepository interface {
	// Create persists a brand-new product.
	//
	// The products table carries a unique constraint on slug; a violation
	// surfaces as a Conflict error.
	Create(ctx context.Context, product *Product) error

	// FindByID returns the product with the given ID.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindBySlug returns the product with the given slug.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// Update persists changes to a product's mutable fields.
	Update(ctx context.Context, product *Product) error

	// ExistsByID reports whether a product with the given ID exists.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Delete permanently removes the product with the given ID.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	Delete(ctx context.Context, id string) error

	// List returns a page of products ordered by creation time, plus the
	// total count for pagination metadata.
	List(ctx context.Context, params pagination.Params) ([]*Product, int, error)
}

// ProductCache defines the volatile read cache over product-by-ID lookups.
//
// # Semantics
//
// The cache is an optimization, never the source of truth: a miss or a
// cache failure falls through to the repository, and every write path
// invalidates eagerly with the TTL as the staleness backstop.
type ProductCache interface {
	// Get returns the cached product, or [apperr.NotFound] on a miss.
	Get(ctx context.Context, id string) (*Product, error)

	// Set stores the product for up to ttl.
	Set(ctx context.Context, product *Product, ttl time.Duration) error

	// Invalidate drops the cached entry for the given product ID.
	Invalidate(ctx context.Context, id string) error
}
