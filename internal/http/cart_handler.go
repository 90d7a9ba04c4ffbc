package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/elitecart/storefront/internal/cart"
	"github.com/elitecart/storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	store   *cart.Store
	catalog *catalog.Service
	logger  *zap.Logger
}

func NewCartHandler(store *cart.Store, catalog *catalog.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// ready rejects reads and writes until the store has hydrated, so a
// client never sees an empty cart that is actually just not loaded yet.
func (h *CartHandler) ready(w http.ResponseWriter) bool {
	if !h.store.Loaded() {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "cart is still loading")
		return false
	}
	return true
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.Get(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.logger.Error("product lookup failed", zap.Int64("product_id", req.ProductID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to fetch product")
		return
	}

	h.store.AddToCart(r.Context(), product)
	respondJSON(w, http.StatusCreated, h.store.Items())
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	respondJSON(w, http.StatusOK, h.store.Items())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// quantity <= 0 removes the entry, matching the store contract
	h.store.UpdateQuantity(r.Context(), productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.store.Items())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	h.store.RemoveFromCart(r.Context(), productID)
	respondJSON(w, http.StatusOK, h.store.Items())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	h.store.ClearCart(r.Context())
	respondJSON(w, http.StatusOK, h.store.Items())
}

type WishlistToggleResponse struct {
	ProductID  int64 `json:"product_id"`
	Wishlisted bool  `json:"wishlisted"`
}

func (h *CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	respondJSON(w, http.StatusOK, h.store.Wishlist())
}

func (h *CartHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	wishlisted := h.store.ToggleWishlist(r.Context(), productID)
	respondJSON(w, http.StatusOK, WishlistToggleResponse{
		ProductID:  productID,
		Wishlisted: wishlisted,
	})
}

func (h *CartHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	h.store.ClearWishlist(r.Context())
	respondJSON(w, http.StatusOK, h.store.Wishlist())
}
