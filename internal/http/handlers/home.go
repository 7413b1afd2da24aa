package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopwindow.dev/app/internal/http/render"
)

// HomeHandler serves the landing page.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

func (h *HomeHandler) Get(c *gin.Context) {
	render.HTML(c, http.StatusOK, "home.tmpl", "Home", nil)
}
