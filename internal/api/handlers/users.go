package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/services"
)

type UserAdmin interface {
	Accounts
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, p models.UserPatch) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type UserHandler struct{ svc UserAdmin }

func NewUserHandler(svc UserAdmin) *UserHandler { return &UserHandler{svc: svc} }

const userNotFound = "User not found"

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeErr(w, r, err, userNotFound)
		return
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Public())
}

type createUserReq struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     *models.Role `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	in := services.NewUser{Name: req.Name, Email: req.Email, Password: req.Password}
	if req.Role != nil {
		in.Role = *req.Role
	}
	u, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeErr(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u.Public())
}

type updateUserReq struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	u, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), models.UserPatch(req))
	if err != nil {
		writeErr(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Public())
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err, userNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
