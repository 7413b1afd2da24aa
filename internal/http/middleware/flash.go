package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/flash"
	"shopwindow.dev/app/pkg/view"
)

const CtxKeyFlash = "flash"

// FlashMiddleware reads the flash cookie into the context and clears it,
// so a message renders exactly once after a redirect.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := c.Cookie(codec.CookieName)
		if err != nil || v == "" {
			c.Next()
			return
		}

		if f, err := codec.Decode(v); err == nil {
			c.Set(CtxKeyFlash, f)
		}
		// Clear unconditionally so a bad cookie is not retried.
		setFlashCookie(c, codec.CookieName, "", -1, codec.Secure)

		c.Next()
	}
}

// GetFlash returns the notice stored by FlashMiddleware, or nil when the
// request carried none.
func GetFlash(c *gin.Context) *view.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if f, ok := v.(*view.Flash); ok {
			return f
		}
	}
	return nil
}

// SetFlashCookie queues a notice for the next page view. Encoding
// failures are swallowed, a lost flash is not worth failing the request.
func SetFlashCookie(c *gin.Context, codec *flash.Codec, f view.Flash) {
	val, err := codec.Encode(f)
	if err != nil {
		return
	}
	setFlashCookie(c, codec.CookieName, val, codec.CookieMaxAge(), codec.Secure)
}

func setFlashCookie(c *gin.Context, name, val string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, val, maxAge, "/", "", secure, true)
}
