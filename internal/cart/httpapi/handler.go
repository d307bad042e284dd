package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/minicommerce/internal/cart/app"
	"github.com/dwikikusuma/minicommerce/internal/cart/domain"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
	"github.com/dwikikusuma/minicommerce/pkg/httpx"
	"github.com/dwikikusuma/minicommerce/pkg/money"
)

// The gateway identifies the caller; inside the mesh identity travels
// as a plain header.
const userIDHeader = "X-User-Id"

type Handler struct {
	svc *app.Service
	db  *sql.DB // nil when running on the in-memory store
	log *slog.Logger
}

func NewHandler(svc *app.Service, db *sql.DB, log *slog.Logger) *Handler {
	return &Handler{svc: svc, db: db, log: log}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/products", h.addProduct)
		r.Delete("/products/{productId}", h.removeProduct)
	})
	r.Get("/health", h.health)

	return r
}

type addProductRequest struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type cartItemResponse struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	ShoppingCartID string             `json:"shoppingCartId"`
	UserID         string             `json:"userId"`
	TotalPrice     string             `json:"totalPrice"`
	TotalQuantity  int                `json:"totalQuantity"`
	Items          []cartItemResponse `json:"items"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	cart, err := h.svc.GetCart(r.Context(), userID)
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	var req addProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	cart, err := h.svc.AddItem(r.Context(), userID, req.ProductID, price, req.Quantity)
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	cart, err := h.svc.RemoveItem(r.Context(), userID, chi.URLParam(r, "productId"))
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCartResponse(cart))
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
		Service:   "cart-service",
		Database:  databaseHealth{Status: "connected", Type: "sqlite"},
	}

	if h.db == nil {
		resp.Database.Type = "memory"
	} else if _, err := h.db.ExecContext(r.Context(), "SELECT 1"); err != nil {
		resp.Status = "error"
		resp.Database.Status = "disconnected"
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func callerID(r *http.Request) (string, error) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		return "", apperr.New(apperr.InvalidArgument, "x-user-id header is required")
	}
	return userID, nil
}

func (h *Handler) logError(r *http.Request, err error) {
	h.log.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("err", err),
	)
}

func toCartResponse(cart *domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, cartItemResponse{
			ProductID: it.ProductID,
			Price:     it.Price.String(),
			Quantity:  it.Quantity,
		})
	}

	return cartResponse{
		ShoppingCartID: cart.ID,
		UserID:         cart.UserID,
		TotalPrice:     cart.TotalPrice.String(),
		TotalQuantity:  cart.TotalQuantity,
		Items:          items,
	}
}
