package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
	"github.com/baharkarakas/storefront-backend/internal/api/validate"
	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/services"
)

type LoginFlow interface {
	Login(ctx context.Context, email, password string) (services.LoginResult, error)
}

type Accounts interface {
	Create(ctx context.Context, in services.NewUser) (models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
}

type AuthHandler struct {
	flow  LoginFlow
	users Accounts
}

func NewAuthHandler(flow LoginFlow, users Accounts) *AuthHandler {
	return &AuthHandler{flow: flow, users: users}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	var errs validate.Errs
	errs.Add(validate.Email("email", req.Email))
	// whitespace is a legal password; only an empty one is a field error
	if req.Password == "" {
		errs.Add(&validate.ErrField{Field: "password", Msg: "required"})
	}
	if err := errs.Err(); err != nil {
		writeErr(w, r, err, "")
		return
	}

	res, err := h.flow.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResp{Token: res.Token, User: res.User})
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register always creates a user-role account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	u, err := h.users.Create(r.Context(), services.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u.Public())
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok || strings.TrimSpace(id.UserID) == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated", nil)
		return
	}
	u, err := h.users.Get(r.Context(), id.UserID)
	if err != nil {
		writeErr(w, r, err, "User not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Public())
}
