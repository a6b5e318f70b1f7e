// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ngocphan/merco/internal/platform/apperr"
	"github.com/ngocphan/merco/internal/platform/constants"
	"github.com/ngocphan/merco/internal/platform/dberr"
	"github.com/ngocphan/merco/internal/platform/validate"
	"github.com/ngocphan/merco/pkg/pagination"
	"github.com/ngocphan/merco/pkg/slug"
	"github.com/ngocphan/merco/pkg/uuidv7"
)

// Service implements product catalog use cases.
type Service struct {
	productRepository ProductRepository
	productCache      ProductCache
	logger            *slog.Logger
}

// NewService constructs a new catalog [Service].
func NewService(repo ProductRepository, cache ProductCache, logger *slog.Logger) *Service {
	return &Service{
		productRepository: repo,
		productCache:      cache,
		logger:            logger,
	}
}

// ProductInput holds the client-supplied fields of a product.
type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Status        ProductStatus
	CreatedBy     *string
}

// validateName applies the dangerous-content denylist to a product name.
//
// Names are rejected, never stripped: this layer is defense in depth, the
// primary XSS defense is output encoding at render time.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.BadRequest("Product name cannot be empty")
	}
	if validate.ContainsDangerousContent(name) {
		return apperr.BadRequest("Product name contains potentially dangerous content. HTML and script tags are not allowed.")
	}
	return nil
}

// validateInput checks the full product payload.
func validateInput(input ProductInput) error {
	if err := validateName(input.Name); err != nil {
		return err
	}

	return (&validate.Validator{}).
		MaxLen("name", input.Name, 255).
		SafeText("description", input.Description).
		NonNegative("price", input.Price).
		Custom("stock_quantity", input.StockQuantity < 0, "Must not be negative").
		Err()
}

// Create validates and persists a new product.
//
// # Slug Generation
//
// The slug derives from the name. On a unique-constraint collision the
// insert is retried once with a random suffix; a second collision is
// surfaced as a conflict.
func (service *Service) Create(ctx context.Context, input ProductInput) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = ProductStatusActive
	}
	if !status.IsValid() {
		return nil, apperr.BadRequest("Product status must be 'active' or 'inactive'")
	}

	product := &Product{
		ID:            uuidv7.New(),
		Name:          input.Name,
		Slug:          slug.From(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Status:        status,
		CreatedBy:     input.CreatedBy,
	}

	err := service.productRepository.Create(ctx, product)
	if dberr.IsConflict(err) {
		// Same name, different product: disambiguate the slug and retry once.
		product.Slug = product.Slug + "-" + uuidv7.Short()
		err = service.productRepository.Create(ctx, product)
	}
	if err != nil {
		if dberr.IsConflict(err) {
			return nil, apperr.Conflict("A product with this name already exists")
		}
		return nil, fmt.Errorf("catalog_service_create_failed: %w", err)
	}

	service.cacheSet(ctx, product)

	return product, nil
}

// Get returns a product by ID, consulting the read cache first.
func (service *Service) Get(ctx context.Context, id string) (*Product, error) {
	if cached, err := service.productCache.Get(ctx, id); err == nil {
		return cached, nil
	}

	product, err := service.productRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	service.cacheSet(ctx, product)

	return product, nil
}

// GetBySlug returns a product by its URL slug.
func (service *Service) GetBySlug(ctx context.Context, productSlug string) (*Product, error) {
	return service.productRepository.FindBySlug(ctx, productSlug)
}

// List returns a page of products plus the total count.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*Product, int, error) {
	return service.productRepository.List(ctx, params)
}

// Update validates and persists changes to an existing product.
//
// The slug is intentionally stable across renames so stored links keep
// resolving.
func (service *Service) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product, err := service.productRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, apperr.BadRequest("Product status must be 'active' or 'inactive'")
		}
		product.Status = input.Status
	}

	if err := service.productRepository.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("catalog_service_update_failed: %w", err)
	}

	service.cacheInvalidate(ctx, id)

	return product, nil
}

// Delete permanently removes a product.
func (service *Service) Delete(ctx context.Context, id string) error {
	exists, err := service.productRepository.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog_service_delete_check_failed: %w", err)
	}
	if !exists {
		return apperr.NotFound("Product")
	}

	if err := service.productRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog_service_delete_failed: %w", err)
	}

	service.cacheInvalidate(ctx, id)

	return nil
}

// cacheSet stores a product in the read cache, logging failures instead of
// propagating them: cache trouble must never fail a catalog request.
func (service *Service) cacheSet(ctx context.Context, product *Product) {
	if err := service.productCache.Set(ctx, product, constants.ProductCacheTTL); err != nil {
		service.logger.WarnContext(ctx, "product_cache_set_failed",
			slog.String("product_id", product.ID),
			slog.Any("error", err),
		)
	}
}

// cacheInvalidate drops a cached product entry, logging failures.
func (service *Service) cacheInvalidate(ctx context.Context, id string) {
	if err := service.productCache.Invalidate(ctx, id); err != nil {
		service.logger.WarnContext(ctx, "product_cache_invalidate_failed",
			slog.String("product_id", id),
			slog.Any("error", err),
		)
	}
}
