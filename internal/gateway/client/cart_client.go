package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dwikikusuma/minicommerce/internal/gateway/app"
)

const cartUnavailable = "Cart service is unavailable"

type CartClient struct {
	baseURL string
	httpc   *http.Client
}

func NewCartClient(baseURL string, timeout time.Duration) *CartClient {
	return &CartClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *CartClient) GetCart(ctx context.Context, userID string) (app.CartView, error) {
	req, err := newRequest(ctx, http.MethodGet, c.baseURL+"/cart", userID, nil)
	if err != nil {
		return app.CartView{}, err
	}

	var view app.CartView
	if err := doJSON(c.httpc, req, &view, cartUnavailable); err != nil {
		return app.CartView{}, err
	}
	return view, nil
}

func (c *CartClient) AddProduct(ctx context.Context, userID, productID, price string, quantity int) (app.CartView, error) {
	payload, err := json.Marshal(map[string]any{
		"productId": productID,
		"price":     price,
		"quantity":  quantity,
	})
	if err != nil {
		return app.CartView{}, err
	}

	req, err := newRequest(ctx, http.MethodPost, c.baseURL+"/cart/products", userID, bytes.NewReader(payload))
	if err != nil {
		return app.CartView{}, err
	}

	var view app.CartView
	if err := doJSON(c.httpc, req, &view, cartUnavailable); err != nil {
		return app.CartView{}, err
	}
	return view, nil
}

func (c *CartClient) RemoveProduct(ctx context.Context, userID, productID string) (app.CartView, error) {
	req, err := newRequest(ctx, http.MethodDelete,
		c.baseURL+"/cart/products/"+url.PathEscape(productID), userID, nil)
	if err != nil {
		return app.CartView{}, err
	}

	var view app.CartView
	if err := doJSON(c.httpc, req, &view, cartUnavailable); err != nil {
		return app.CartView{}, err
	}
	return view, nil
}
