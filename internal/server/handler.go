package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/five82/artshelf/internal/gallery"
	"github.com/five82/artshelf/internal/state"
)

// notFoundBody matches what the hosted mock API answers for an unknown id.
const notFoundBody = "Not found"

// Handler serves the catalog API from a snapshot store.
type Handler struct {
	store *state.Store
}

// NewHandler returns a Handler reading from store.
func NewHandler(store *state.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the catalog endpoints on r.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/Assignment", h.listProducts)
	r.Get("/Assignment/{id}", h.getProduct)
	r.Get("/healthz", h.health)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.store.Snapshot().Products
	if products == nil {
		products = []gallery.Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	products := h.store.Lookup(id)
	if len(products) == 0 {
		respond(w, http.StatusNotFound, notFoundBody)
		return
	}
	respond(w, http.StatusOK, products)
}

type healthResponse struct {
	Status     string    `json:"status"`
	Products   int       `json:"products"`
	Source     string    `json:"source,omitempty"`
	LastLoaded time.Time `json:"lastLoaded,omitzero"`
	LastError  string    `json:"lastError,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	body := healthResponse{
		Status:     "ok",
		Products:   len(snap.Products),
		Source:     snap.Source,
		LastLoaded: snap.LastLoaded,
	}
	if snap.Degraded() {
		body.Status = "degraded"
		body.LastError = snap.LastError.Error()
	}
	respond(w, http.StatusOK, body)
}

func respond(w http.ResponseWriter, status int, body any) {
	const op = "server.respond"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
