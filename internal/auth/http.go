// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ngocphan/merco/internal/platform/request"
	"github.com/ngocphan/merco/internal/platform/respond"
	"github.com/ngocphan/merco/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
//
// Handlers act as the "gatekeepers" to the system. They are responsible for
// JSON request parsing, boundary validation, and mapping HTTP contexts to
// service layer method calls. They contain NO business logic or database
// queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a JWT.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	return router
}

// credentialsRequest represents the JSON payload for both auth endpoints.
//
// Credentials are transient: they live for the duration of the request and
// are never persisted or logged.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register handles POST /api/auth/register requests.
//
// # Returns
//   - 200 OK with a plain confirmation message on success.
//   - 400 Bad Request "Username is already taken" for duplicates.
//   - 400 Bad Request if boundary validation fails.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Username == "" {
		respond.Error(writer, request, validate.RequiredError("username", "is required"))
		return
	}
	if input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("password", "is required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	// Service handles the uniqueness check and bcrypt hashing.
	_, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	// Confirmation only: neither the hash nor the plaintext ever leaves here.
	respond.OK(writer, map[string]string{"message": "Register successfully"})
}

// login handles POST /api/auth/login requests.
//
// # Returns
//   - 200 OK with {token, user_id, username} on success.
//   - 401 Unauthorized "Invalid username or password" for bad credentials,
//     identical for unknown-user and wrong-password cases.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Username == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("username/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		// 401 without leaking whether the username or the password was wrong.
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, map[string]any{
		"token":    result.Token,
		"user_id":  result.User.ID,
		"username": result.User.Username,
	})
}
