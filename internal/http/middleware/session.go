package middleware

import (
	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/sessioncookie"
	"shopwindow.dev/app/internal/session"
)

const ctxKeySession = "session"

// SessionCfg wires the in-memory session store to its signed cookie.
type SessionCfg struct {
	Store *session.Store
	Codec *sessioncookie.Codec
}

// SessionMiddleware attaches the visitor's session to the request,
// creating one with an empty cart on first contact. The cart lives in
// process memory only; restarting the server empties every cart, which
// is the intended lifecycle.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := cfg.Codec.GetSessionID(c); ok {
			if s, found := cfg.Store.Get(id); found {
				c.Set(ctxKeySession, s)
				c.Next()
				return
			}
		}

		s := cfg.Store.Create()
		cfg.Codec.Set(c, s.ID)
		c.Set(ctxKeySession, s)
		c.Next()
	}
}

// CurrentSession retrieves the visitor's session from the gin context.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
