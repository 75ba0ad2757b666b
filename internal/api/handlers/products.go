package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/services"
)

type Catalog interface {
	List(ctx context.Context, limit, offset int) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, in services.ProductInput) (models.Product, error)
	Update(ctx context.Context, id string, p models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct{ svc Catalog }

func NewProductHandler(svc Catalog) *ProductHandler { return &ProductHandler{svc: svc} }

const productNotFound = "Product not found"

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := 0, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	items, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, r, err, productNotFound)
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err, productNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

type productReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	p, err := h.svc.Create(r.Context(), services.ProductInput(req))
	if err != nil {
		writeErr(w, r, err, productNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

type productPatchReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productPatchReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}
	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), models.ProductPatch(req))
	if err != nil {
		writeErr(w, r, err, productNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err, productNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
