package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/catalog"
	"shopwindow.dev/app/internal/http/flash"
	"shopwindow.dev/app/internal/http/middleware"
	"shopwindow.dev/app/internal/http/render"
	"shopwindow.dev/app/internal/modules/quantity"
	"shopwindow.dev/app/internal/shared/apperr"
	"shopwindow.dev/app/pkg/view"
)

// ShopHandler serves the catalog page and its add-to-cart submits.
type ShopHandler struct {
	Catalog *catalog.Cache
	Flash   *flash.Codec
	Logger  *slog.Logger
}

func NewShopHandler(cache *catalog.Cache, flashCodec *flash.Codec, l *slog.Logger) *ShopHandler {
	return &ShopHandler{Catalog: cache, Flash: flashCodec, Logger: l}
}

// Get handles GET /shop - the product listing with quantity widgets.
func (h *ShopHandler) Get(c *gin.Context) {
	snap := h.Catalog.Snapshot()

	switch snap.Status {
	case catalog.StatusLoading:
		render.HTML(c, http.StatusOK, "shop.tmpl", "Shop", view.ShopPage{Loading: true})
		return
	case catalog.StatusError:
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "shop_catalog_unavailable",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", snap.Err),
		)
		render.HTML(c, http.StatusOK, "shop.tmpl", "Shop", view.ShopPage{
			ErrorMsg: "A network error has occurred.",
		})
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}

	vm := view.ShopPage{Products: make([]view.ProductCard, 0, len(snap.Products))}
	for _, p := range snap.Products {
		e := sess.Editor(shopEditorKey(p.ID), 1)
		vm.Products = append(vm.Products, view.ProductCard{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			ImageURL:     p.Image,
			UnitPrice:    view.Money(p.Price),
			LinePrice:    "$" + e.DisplayPrice(p.Price),
			QtyDisplay:   e.Display(),
			QtyCommitted: e.Committed(),
		})
	}
	render.HTML(c, http.StatusOK, "shop.tmpl", "Shop", vm)
}

// Add handles POST /shop/add - submits one quantity widget into the cart.
// The catalog page accumulates; the same product twice grows the line.
func (h *ShopHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	rawQty := c.PostForm("qty")

	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/shop", view.FlashError, "No product selected.")
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}

	// The submitted field is the widget's display text at submit time;
	// the mediator normalizes it exactly as blur would.
	editor := sess.Editor(shopEditorKey(productID), 1)
	editor.OnType(rawQty)

	snap := h.Catalog.Snapshot()
	var submitErr error
	m := quantity.NewMediator(productID, editor, func(id string, qty int) {
		submitErr = sess.Cart.AddOrAccumulate(id, qty, snap.Lookup)
	})
	m.SubmitAdd()

	if submitErr != nil {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "cart_add_rejected",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("product_id", productID),
			slog.Any("err", submitErr),
		)
		render.RedirectWithFlash(c, h.Flash, "/shop", view.FlashError, apperr.PublicMessage(submitErr))
		return
	}

	// The cart line changed underneath its widget; drop the stale editor
	// so the cart page re-seeds it from the new line quantity.
	sess.ResetEditor(cartEditorKey(productID))

	render.RedirectWithFlash(c, h.Flash, "/shop", view.FlashSuccess, "Added to cart.")
}

func shopEditorKey(productID string) string { return "shop:" + productID }
func cartEditorKey(productID string) string { return "cart:" + productID }
