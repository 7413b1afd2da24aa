package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/flash"
	"shopwindow.dev/app/internal/http/middleware"
	"shopwindow.dev/app/internal/http/render"
	"shopwindow.dev/app/internal/modules/cart"
	"shopwindow.dev/app/internal/modules/quantity"
	"shopwindow.dev/app/internal/shared/apperr"
	"shopwindow.dev/app/pkg/view"
)

// CartHandler serves the cart page and its update/remove submits.
type CartHandler struct {
	Flash  *flash.Codec
	Logger *slog.Logger
}

func NewCartHandler(flashCodec *flash.Codec, l *slog.Logger) *CartHandler {
	return &CartHandler{Flash: flashCodec, Logger: l}
}

// Get handles GET /cart - the cart page with per-line quantity widgets.
func (h *CartHandler) Get(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}

	// Seed a widget per line so the input reflects the line's quantity.
	for _, l := range sess.Cart.Lines() {
		sess.Editor(cartEditorKey(l.Product.ID), l.Quantity)
	}

	vm := cart.BuildCartPage(sess.Cart, func(productID string) (string, int, bool) {
		return sess.EditorState(cartEditorKey(productID))
	})
	render.HTML(c, http.StatusOK, "cart.tmpl", "Cart", vm)
}

// Update handles POST /cart/update - overwrites a line's quantity with
// the widget's normalized value. Unlike the shop page this never
// accumulates.
func (h *CartHandler) Update(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	rawQty := c.PostForm("qty")

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "No product selected.")
		return
	}

	starter := 1
	if line, ok := sess.Cart.Get(productID); ok {
		starter = line.Quantity
	}
	editor := sess.Editor(cartEditorKey(productID), starter)
	editor.OnType(rawQty)

	var submitErr error
	m := quantity.NewMediator(productID, editor, func(id string, qty int) {
		_, submitErr = sess.Cart.SetOrRemove(id, qty, nil)
	})
	m.SubmitAdd()

	if submitErr != nil {
		h.failReconcile(c, productID, submitErr)
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Quantity updated.")
}

// ConfirmRemove handles GET /cart/remove/:id - the yes/no page naming
// the product about to be removed.
func (h *CartHandler) ConfirmRemove(c *gin.Context) {
	productID := c.Param("id")

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}

	line, ok := sess.Cart.Get(productID)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "That item is not in your cart.")
		return
	}

	render.HTML(c, http.StatusOK, "confirm_remove.tmpl", "Remove item", view.ConfirmRemovePage{
		ProductID: line.Product.ID,
		Title:     line.Product.Title,
	})
}

// Remove handles POST /cart/remove. The remove button always submits
// quantity 0, whatever is typed in the field. Without a confirm answer
// the visitor is sent to the confirmation page first; the cart is only
// touched once the answer is in.
func (h *CartHandler) Remove(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	answer := c.PostForm("confirm")

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "No product selected.")
		return
	}

	if answer == "" {
		c.Redirect(http.StatusFound, "/cart/remove/"+productID)
		return
	}

	starter := 1
	if line, ok := sess.Cart.Get(productID); ok {
		starter = line.Quantity
	}
	editor := sess.Editor(cartEditorKey(productID), starter)

	confirmed := answer == "yes"
	var removed bool
	var submitErr error
	m := quantity.NewMediator(productID, editor, func(id string, qty int) {
		removed, submitErr = sess.Cart.SetOrRemove(id, qty, cart.ConfirmerFunc(func(string) bool {
			return confirmed
		}))
	})
	m.SubmitRemove()

	if submitErr != nil {
		h.failReconcile(c, productID, submitErr)
		return
	}

	if !removed {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashInfo, "Item kept in cart.")
		return
	}

	sess.ResetEditor(cartEditorKey(productID))
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Item removed from cart.")
}

// failReconcile reports a reconciliation error. Contract misuse (editing
// a line that is not there) aborts loudly in debug so it shows up during
// development, and degrades to a flash in release.
func (h *CartHandler) failReconcile(c *gin.Context, productID string, err error) {
	h.Logger.LogAttrs(c.Request.Context(), slog.LevelError, "cart_reconcile_failed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("product_id", productID),
		slog.Any("err", err),
	)

	if apperr.IsKind(err, apperr.Conflict) && gin.IsDebugging() {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, apperr.PublicMessage(err))
}
