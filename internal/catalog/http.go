// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ngocphan/merco/internal/platform/middleware"
	requestutil "github.com/ngocphan/merco/internal/platform/request"
	"github.com/ngocphan/merco/internal/platform/respond"
	"github.com/ngocphan/merco/pkg/pagination"
)

// Handler implements the /api/products HTTP surface.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns a [chi.Router] for the catalog.
//
// Reads are public; writes require an authenticated bearer token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/by-slug/{slug}", handler.getBySlug)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.create)
		protected.Put("/{id}", handler.update)
		protected.Delete("/{id}", handler.remove)
	})

	return router
}

// productRequest represents the JSON payload for create/update operations.
type productRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Status        string  `json:"status"`
}

// list handles GET /api/products.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	products, total, err := handler.catalogService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(params.Page, params.Limit, total))
}

// get handles GET /api/products/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.catalogService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

// getBySlug handles GET /api/products/by-slug/{slug}.
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.catalogService.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

// create handles POST /api/products.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.catalogService.Create(request.Context(), ProductInput{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Status:        ProductStatus(input.Status),
		CreatedBy:     &userID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}

// update handles PUT /api/products/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.catalogService.Update(request.Context(), requestutil.Param(request, "id"), ProductInput{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Status:        ProductStatus(input.Status),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

// remove handles DELETE /api/products/{id}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.catalogService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
