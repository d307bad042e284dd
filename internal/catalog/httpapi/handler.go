package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/minicommerce/internal/catalog/app"
	"github.com/dwikikusuma/minicommerce/internal/catalog/domain"
	"github.com/dwikikusuma/minicommerce/pkg/httpx"
)

type Handler struct {
	svc *app.Service
	db  *sql.DB
	log *slog.Logger
}

func NewHandler(svc *app.Service, db *sql.DB, log *slog.Logger) *Handler {
	return &Handler{svc: svc, db: db, log: log}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", h.listProducts)
	r.Get("/products/{productId}", h.getProduct)
	r.Get("/health", h.health)

	return r
}

type productResponse struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.log.Error("list products failed", slog.Any("err", err))
		httpx.WriteError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductResponse(p))
}

type healthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Service   string         `json:"service"`
	Database  databaseHealth `json:"database"`
}

type databaseHealth struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "products-service",
		Database:  databaseHealth{Status: "connected", Type: "sqlite"},
	}

	if _, err := h.db.ExecContext(r.Context(), "SELECT 1"); err != nil {
		resp.Status = "error"
		resp.Database.Status = "disconnected"
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{ProductID: p.ProductID, Price: p.Price.String()}
}
