package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dwikikusuma/minicommerce/internal/gateway/app"
)

const productsUnavailable = "Products service is unavailable"

type CatalogClient struct {
	baseURL string
	httpc   *http.Client
}

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (app.Product, error) {
	req, err := newRequest(ctx, http.MethodGet,
		c.baseURL+"/products/"+url.PathEscape(productID), "", nil)
	if err != nil {
		return app.Product{}, err
	}

	var p app.Product
	if err := doJSON(c.httpc, req, &p, productsUnavailable); err != nil {
		return app.Product{}, err
	}
	return p, nil
}

func (c *CatalogClient) ListProducts(ctx context.Context) ([]app.Product, error) {
	req, err := newRequest(ctx, http.MethodGet, c.baseURL+"/products", "", nil)
	if err != nil {
		return nil, err
	}

	var products []app.Product
	if err := doJSON(c.httpc, req, &products, productsUnavailable); err != nil {
		return nil, err
	}
	return products, nil
}
