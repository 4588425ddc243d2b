package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lawdept/justice-api/internal/api/shared"
	"github.com/lawdept/justice-api/internal/domain"
	"github.com/lawdept/justice-api/internal/platform/logger"
	"github.com/lawdept/justice-api/internal/service/auth"
	"github.com/lawdept/justice-api/internal/store"
)

// Auth response messages. Login failures deliberately share one message so
// callers cannot distinguish an unknown email from a wrong password.
const (
	msgUserRegistered     = "User registered successfully"
	msgUserExists         = "User already exists"
	msgLoginSuccessful    = "Login successful"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidRequest     = "Invalid request"
	msgServerError        = "Server error"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		validator: validator.New(),
	}
}

// Signup handles the /api/signup endpoint. It verifies credentials are
// well-formed, rejects duplicate emails, and stores a new user with a hashed
// password. No session is established.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidRequest})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidRequest})
		return
	}

	// Check for an existing user first so the common duplicate path answers
	// without a write attempt. The unique index still backs the invariant
	// against concurrent signups.
	_, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgUserExists})
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check for existing user", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, MessageResponse{Msg: msgServerError})
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidRequest})
		return
	}

	hash, err := h.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, MessageResponse{Msg: msgServerError})
		return
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgUserExists})
			return
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, MessageResponse{Msg: msgServerError})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{Msg: msgUserRegistered})
}

// Login handles the /api/login endpoint. It is a stateless credential check:
// no token or cookie is issued on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidRequest})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidRequest})
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidCredentials})
			return
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, MessageResponse{Msg: msgServerError})
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, MessageResponse{Msg: msgInvalidCredentials})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Msg: msgLoginSuccessful})
}
