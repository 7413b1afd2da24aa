package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/flash"
	"shopwindow.dev/app/internal/http/middleware"
	"shopwindow.dev/app/internal/shared/apperr"
)

// QtyHandler serves the quantity widget's non-submit events: the +/-
// step buttons and the blur fallback. Both mutate only the session's
// editor state and bounce back to the page the widget lives on.
type QtyHandler struct {
	Flash *flash.Codec
}

func NewQtyHandler(flashCodec *flash.Codec) *QtyHandler {
	return &QtyHandler{Flash: flashCodec}
}

// Step handles POST /qty/step with dir=inc|dec. Stepping works off the
// committed quantity, so it stays numeric even when the field holds
// half-typed text.
func (h *QtyHandler) Step(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	scope := c.PostForm("scope")
	dir := c.PostForm("dir")

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}
	key, back, ok := widgetTarget(scope, productID)
	if !ok {
		c.Redirect(http.StatusFound, "/shop")
		return
	}

	starter := 1
	if scope == "cart" {
		if line, found := sess.Cart.Get(productID); found {
			starter = line.Quantity
		}
	}
	editor := sess.Editor(key, starter)

	switch dir {
	case "inc":
		editor.Increment()
	case "dec":
		editor.Decrement()
	}

	c.Redirect(http.StatusFound, back)
}

// Blur handles POST /qty/blur - normalizes the typed text and resyncs
// the field, mirroring what an input's blur event does.
func (h *QtyHandler) Blur(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	scope := c.PostForm("scope")
	raw := c.PostForm("qty")

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return
	}
	key, back, ok := widgetTarget(scope, productID)
	if !ok {
		c.Redirect(http.StatusFound, "/shop")
		return
	}

	starter := 1
	if scope == "cart" {
		if line, found := sess.Cart.Get(productID); found {
			starter = line.Quantity
		}
	}
	editor := sess.Editor(key, starter)
	editor.OnType(raw)
	editor.OnBlur()

	c.Redirect(http.StatusFound, back)
}

func widgetTarget(scope, productID string) (key, backURL string, ok bool) {
	if productID == "" {
		return "", "", false
	}
	switch scope {
	case "shop":
		return shopEditorKey(productID), "/shop", true
	case "cart":
		return cartEditorKey(productID), "/cart", true
	}
	return "", "", false
}
