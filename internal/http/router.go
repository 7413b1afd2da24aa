package apphttp

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/catalog"
	"shopwindow.dev/app/internal/http/flash"
	"shopwindow.dev/app/internal/http/handlers"
	"shopwindow.dev/app/internal/http/middleware"
	"shopwindow.dev/app/internal/http/render"
	"shopwindow.dev/app/internal/http/sessioncookie"
	"shopwindow.dev/app/internal/session"
)

// Deps is everything the web router needs wired in from main.
type Deps struct {
	Catalog  *catalog.Cache
	Sessions *session.Store
	Secret   []byte
	Secure   bool
}

func NewRouter(logger *slog.Logger, deps Deps) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(render.Templates())

	flashCodec := flash.NewCodec(deps.Secret, "sw_flash", deps.Secure)
	sessionCodec := sessioncookie.New(deps.Secret, "sw_session", deps.Secure)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
		middleware.FlashMiddleware(flashCodec),
		middleware.SessionMiddleware(middleware.SessionCfg{Store: deps.Sessions, Codec: sessionCodec}),
		middleware.CartCount(),
	)

	home := handlers.NewHomeHandler()
	shop := handlers.NewShopHandler(deps.Catalog, flashCodec, logger)
	cart := handlers.NewCartHandler(flashCodec, logger)
	qty := handlers.NewQtyHandler(flashCodec)

	r.GET("/", home.Get)

	r.GET("/shop", shop.Get)
	r.POST("/shop/add", shop.Add)

	r.GET("/cart", cart.Get)
	r.POST("/cart/update", cart.Update)
	r.GET("/cart/remove/:id", cart.ConfirmRemove)
	r.POST("/cart/remove", cart.Remove)

	r.POST("/qty/step", qty.Step)
	r.POST("/qty/blur", qty.Blur)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	return r
}
