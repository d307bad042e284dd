package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/minicommerce/internal/gateway/app"
	"github.com/dwikikusuma/minicommerce/internal/gateway/auth"
	"github.com/dwikikusuma/minicommerce/internal/gateway/health"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
	"github.com/dwikikusuma/minicommerce/pkg/httpx"
)

type Handler struct {
	svc     *app.Service
	auth    *auth.Authenticator
	checker *health.Checker
	log     *slog.Logger
}

func NewHandler(svc *app.Service, a *auth.Authenticator, checker *health.Checker, log *slog.Logger) *Handler {
	return &Handler{svc: svc, auth: a, checker: checker, log: log}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(h.log))

	// Public surface: login, catalog browsing, health.
	r.Post("/auth/login", h.login)
	r.Get("/products", h.listProducts)
	r.Get("/health", h.health)

	// Cart operations require a resolved identity.
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware)
		r.Get("/cart", h.viewCart)
		r.Post("/cart/products", h.addToCart)
		r.Delete("/cart/products/{productId}", h.removeFromCart)
	})

	return r
}

type loginRequest struct {
	UserID string `json:"userId"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.UserID == "" {
		httpx.WriteError(w, apperr.New(apperr.InvalidArgument, "userId is required"))
		return
	}

	token, err := h.auth.Issue(req.UserID)
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResponse{AccessToken: token, UserID: req.UserID})
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, apperr.New(apperr.Unauthenticated, "no identity on request"))
		return
	}

	view, err := h.svc.ViewCart(r.Context(), userID)
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, apperr.New(apperr.Unauthenticated, "no identity on request"))
		return
	}

	var req addToCartRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	view, err := h.svc.AddToCart(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, apperr.New(apperr.Unauthenticated, "no identity on request"))
		return
	}

	view, err := h.svc.RemoveFromCart(r.Context(), userID, chi.URLParam(r, "productId"))
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.logError(r, err)
		httpx.WriteError(w, err)
		return
	}
	if products == nil {
		products = []app.Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.checker.Check(r.Context()))
}

func (h *Handler) logError(r *http.Request, err error) {
	h.log.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("kind", apperr.KindOf(err).String()),
		slog.Any("err", err),
	)
}
