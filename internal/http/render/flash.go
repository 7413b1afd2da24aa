package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/flash"
	"shopwindow.dev/app/internal/http/middleware"
	"shopwindow.dev/app/pkg/view"
)

// RedirectWithFlash is the standard way a form post finishes: queue the
// notice and bounce the browser so a refresh never resubmits.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
