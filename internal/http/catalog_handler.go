package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elitecart/storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog *catalog.Service
	logger  *zap.Logger
}

func NewCatalogHandler(catalog *catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Products())
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	product, err := h.catalog.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.logger.Error("catalog get failed", zap.Int64("product_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to fetch product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("catalog search failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}

	respondJSON(w, http.StatusOK, results)
}
