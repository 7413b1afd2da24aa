package apphttp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopwindow.dev/app/internal/catalog"
	"shopwindow.dev/app/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var demoProducts = []catalog.Product{
	{ID: "p1", Title: "Backpack", Description: "Fits 15 inch laptops", Price: 10.00, Image: "https://img/p1.jpg"},
	{ID: "p2", Title: "T-Shirt", Description: "Slim fit", Price: 22.30, Image: "https://img/p2.jpg"},
}

func catalogServer(t *testing.T, products []catalog.Product) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(products)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestApp boots the full storefront against a stub catalog and
// returns an HTTP client with a cookie jar, so requests share a session
// the way a browser would.
func newTestApp(t *testing.T, products []catalog.Product) (*httptest.Server, *http.Client) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := catalog.NewCache(catalog.NewClient(catalogServer(t, products).URL), time.Minute, logger)
	require.NoError(t, cache.Refresh(context.Background()))

	r := NewRouter(logger, Deps{
		Catalog:  cache,
		Sessions: session.NewStore(time.Minute),
		Secret:   []byte("test-secret"),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func get(t *testing.T, c *http.Client, u string) string {
	t.Helper()
	resp, err := c.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return string(body)
}

func post(t *testing.T, c *http.Client, u string, form url.Values) string {
	t.Helper()
	resp, err := c.PostForm(u, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestShopPageListsProducts(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)
	body := get(t, c, srv.URL+"/shop")
	assert.Contains(t, body, "Backpack")
	assert.Contains(t, body, "T-Shirt")
	assert.Contains(t, body, "$10.00")
}

func TestShopPageLoadingState(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// Cache never refreshed: first paint shows the loading placeholder.
	cache := catalog.NewCache(catalog.NewClient("http://127.0.0.1:0"), time.Minute, logger)
	r := NewRouter(logger, Deps{
		Catalog:  cache,
		Sessions: session.NewStore(time.Minute),
		Secret:   []byte("test-secret"),
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	jar, _ := cookiejar.New(nil)
	body := get(t, &http.Client{Jar: jar}, srv.URL+"/shop")
	assert.Contains(t, body, `<div class="loading">`)
	assert.NotContains(t, body, "Backpack")
}

func TestShopPageErrorState(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()
	cache := catalog.NewCache(catalog.NewClient(down.URL), time.Minute, logger)
	_ = cache.Refresh(context.Background())

	r := NewRouter(logger, Deps{
		Catalog:  cache,
		Sessions: session.NewStore(time.Minute),
		Secret:   []byte("test-secret"),
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	jar, _ := cookiejar.New(nil)
	body := get(t, &http.Client{Jar: jar}, srv.URL+"/shop")
	assert.Contains(t, body, "A network error has occurred.")
}

func TestAddToCartAndAccumulate(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"2"}})
	body := get(t, c, srv.URL+"/cart")
	assert.Contains(t, body, "Backpack")
	assert.Contains(t, body, `value="2"`)
	assert.Contains(t, body, "$20.00")

	// Same product again: the line accumulates, it does not duplicate.
	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"3"}})
	body = get(t, c, srv.URL+"/cart")
	assert.Equal(t, 1, strings.Count(body, "Backpack"))
	assert.Contains(t, body, `value="5"`)
	assert.Contains(t, body, "$50.00")
}

func TestAddToCartNormalizesInvalidQty(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"20e"}})
	body := get(t, c, srv.URL+"/cart")
	assert.Contains(t, body, `value="1"`)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p2"}, "qty": {"30.2"}})
	body = get(t, c, srv.URL+"/cart")
	assert.Contains(t, body, `value="30"`)
}

func TestAddUnknownProductFlashesError(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	body := post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"ghost"}, "qty": {"1"}})
	assert.Contains(t, body, "no longer available")

	cartBody := get(t, c, srv.URL+"/cart")
	assert.Contains(t, cartBody, "Your cart is empty")
}

func TestCartUpdateOverwrites(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"2"}})
	post(t, c, srv.URL+"/cart/update", url.Values{"product_id": {"p1"}, "qty": {"5"}})

	body := get(t, c, srv.URL+"/cart")
	assert.Contains(t, body, `value="5"`)
	assert.Contains(t, body, "$50.00")
}

func TestCartUpdateAbsentProductDoesNotInsert(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	body := post(t, c, srv.URL+"/cart/update", url.Values{"product_id": {"p1"}, "qty": {"5"}})
	assert.Contains(t, body, "not in your cart")

	cartBody := get(t, c, srv.URL+"/cart")
	assert.Contains(t, cartBody, "Your cart is empty")
}

func TestRemoveConfirmationFlow(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)
	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"2"}})

	// No answer yet: the visitor lands on the confirm page naming the
	// product, and the cart is untouched.
	body := post(t, c, srv.URL+"/cart/remove", url.Values{"product_id": {"p1"}})
	assert.Contains(t, body, "Are you sure you want to remove")
	assert.Contains(t, body, "Backpack")

	// Declining keeps the line, quantity intact.
	post(t, c, srv.URL+"/cart/remove", url.Values{"product_id": {"p1"}, "confirm": {"no"}})
	cartBody := get(t, c, srv.URL+"/cart")
	assert.Contains(t, cartBody, "Backpack")
	assert.Contains(t, cartBody, `value="2"`)

	// Confirming removes exactly that line.
	post(t, c, srv.URL+"/cart/remove", url.Values{"product_id": {"p1"}, "confirm": {"yes"}})
	cartBody = get(t, c, srv.URL+"/cart")
	assert.Contains(t, cartBody, "Your cart is empty")
}

func TestRemoveIgnoresTypedQuantity(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)
	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"2"}})

	// The qty field content is irrelevant to remove; it always means 0.
	post(t, c, srv.URL+"/cart/remove", url.Values{"product_id": {"p1"}, "qty": {"42"}, "confirm": {"yes"}})
	cartBody := get(t, c, srv.URL+"/cart")
	assert.Contains(t, cartBody, "Your cart is empty")
}

func TestQtyStepOnShopPage(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	get(t, c, srv.URL+"/shop") // seed widgets
	post(t, c, srv.URL+"/qty/step", url.Values{"product_id": {"p1"}, "scope": {"shop"}, "dir": {"inc"}})
	post(t, c, srv.URL+"/qty/step", url.Values{"product_id": {"p1"}, "scope": {"shop"}, "dir": {"inc"}})

	body := get(t, c, srv.URL+"/shop")
	assert.Contains(t, body, `value="3"`)
	assert.Contains(t, body, "$30.00") // line price follows the committed qty

	post(t, c, srv.URL+"/qty/step", url.Values{"product_id": {"p1"}, "scope": {"shop"}, "dir": {"dec"}})
	body = get(t, c, srv.URL+"/shop")
	assert.Contains(t, body, `value="2"`)
}

func TestQtyBlurNormalizes(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	post(t, c, srv.URL+"/qty/blur", url.Values{"product_id": {"p1"}, "scope": {"shop"}, "qty": {"30.2"}})
	body := get(t, c, srv.URL+"/shop")
	assert.Contains(t, body, `value="30"`)

	post(t, c, srv.URL+"/qty/blur", url.Values{"product_id": {"p1"}, "scope": {"shop"}, "qty": {"-7"}})
	body = get(t, c, srv.URL+"/shop")
	assert.Contains(t, body, `value="1"`)
}

func TestCartBadgeSaturates(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"2"}})
	body := get(t, c, srv.URL+"/")
	assert.Contains(t, body, `<span class="badge">2</span>`)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p1"}, "qty": {"98"}})
	body = get(t, c, srv.URL+"/")
	assert.Contains(t, body, "🤑")
}

func TestCartSharedAcrossPages(t *testing.T) {
	srv, c := newTestApp(t, demoProducts)

	post(t, c, srv.URL+"/shop/add", url.Values{"product_id": {"p2"}, "qty": {"4"}})

	// Shop and cart render the same session cart: the badge shows on both.
	shopBody := get(t, c, srv.URL+"/shop")
	cartBody := get(t, c, srv.URL+"/cart")
	assert.Contains(t, shopBody, `<span class="badge">4</span>`)
	assert.Contains(t, cartBody, `<span class="badge">4</span>`)
	assert.Contains(t, cartBody, "T-Shirt")
}
