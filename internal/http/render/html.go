package render

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/middleware"
	"shopwindow.dev/app/pkg/view"
	"shopwindow.dev/app/templates"
)

// Page is the envelope every template receives: chrome shared by the
// layout plus the page's own view model.
type Page struct {
	Title     string
	Flash     *view.Flash
	CartCount int
	CartBadge string
	Data      any
}

// Templates parses the embedded template set for gin.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templates.FS, "*.tmpl"))
}

// HTML renders a page template with the shared chrome filled in from the
// request context.
func HTML(c *gin.Context, status int, name, title string, data any) {
	count := middleware.GetCartCount(c)
	c.HTML(status, name, Page{
		Title:     title,
		Flash:     middleware.GetFlash(c),
		CartCount: count,
		CartBadge: middleware.CartBadge(count),
		Data:      data,
	})
}
