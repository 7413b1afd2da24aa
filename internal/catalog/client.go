package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"shopwindow.dev/app/internal/shared/apperr"
)

// Client fetches products from the catalog service. Every call takes a
// context so an abandoned view tears down its in-flight request instead
// of letting a late response arrive for nobody. There is no retry here:
// a failed fetch is terminal for that attempt.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string) *Client {
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "catalog",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A missing product is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || apperr.IsKind(err, apperr.NotFound)
		},
	})
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: cb,
	}
}

// FetchAll returns every product in the catalog.
func (c *Client) FetchAll(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, c.baseURL+"/products")
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, apperr.Wrap(fmt.Errorf("decode products: %w", err))
	}
	return products, nil
}

// Fetch returns one product by id. A 404 maps to apperr.NotFound.
func (c *Client) Fetch(ctx context.Context, id string) (Product, error) {
	body, err := c.get(ctx, c.baseURL+"/products/"+id)
	if err != nil {
		return Product{}, err
	}
	var p Product
	if err := json.Unmarshal(body, &p); err != nil {
		return Product{}, apperr.Wrap(fmt.Errorf("decode product %s: %w", id, err))
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, apperr.Wrap(fmt.Errorf("catalog request: %w", err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, apperr.NotFoundErr("Product not found.")
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return nil, apperr.Wrap(fmt.Errorf("catalog responded %d for %s", resp.StatusCode, url))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		return body, nil
	})
}
