package user

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
)

// Handler wires the auth and profile routes to UserService.
type Handler struct {
	userService UserService
	logger      *zap.Logger
}

func NewHandler(userService UserService, logger *zap.Logger) *Handler {
	return &Handler{userService: userService, logger: logger}
}

// RegisterPublic mounts the routes that need no token.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
}

func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/users/me", h.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/users/me", h.DeleteAccount).Methods(http.MethodDelete)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token   string        `json:"token"`
	User    *dbmysql.User `json:"user"`
	Message string        `json:"message"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.userService.RegisterUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Debug("registration rejected", zap.String("username", req.Username), zap.Error(err))
		common.WriteDomainError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user, Message: "registration successful"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.userService.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Debug("login rejected", zap.String("username", req.Username), zap.Error(err))
		common.WriteDomainError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, AuthResponse{Token: token, User: user, Message: "login successful"})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

// DELETE /users/me runs the account deletion cascade for the caller.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	res, err := h.userService.DeleteAccount(r.Context(), userID, userID)
	if err != nil {
		h.logger.Error("account deletion failed", zap.String("user_id", userID), zap.Error(err))
		common.WriteDomainError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, res)
}
