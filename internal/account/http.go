// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ngocphan/merco/internal/platform/middleware"
	requestutil "github.com/ngocphan/merco/internal/platform/request"
	"github.com/ngocphan/merco/internal/platform/respond"
	"github.com/ngocphan/merco/internal/platform/validate"
	"github.com/ngocphan/merco/pkg/pagination"
)

// Handler implements the administrative user CRUD endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] for the /api/users surface.
//
// Every route requires an authenticated bearer token; this is a management
// surface, not a public one.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// userRequest represents the JSON payload for create/update operations.
type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// list handles GET /api/users.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

// get handles GET /api/users/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.accountService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// create handles POST /api/users.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input userRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Username == "" {
		respond.Error(writer, request, validate.RequiredError("username", "is required"))
		return
	}
	if input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("password", "is required"))
		return
	}

	user, err := handler.accountService.Create(request.Context(), CreateInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// update handles PUT /api/users/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input userRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Username == "" {
		respond.Error(writer, request, validate.RequiredError("username", "is required"))
		return
	}

	user, err := handler.accountService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// remove handles DELETE /api/users/{id}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.accountService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
