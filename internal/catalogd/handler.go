package catalogd

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler exposes the catalog over the JSON API the storefront consumes:
// fetch all products, fetch one by id. Nothing else — writes happen
// through the seed tool.
type Handler struct {
	repo   *Repo
	logger *slog.Logger
}

func NewHandler(repo *Repo, l *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: l}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/products", h.List)
	r.GET("/products/:id", h.Get)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.LogAttrs(c.Request.Context(), slog.LevelError, "catalog_list_failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.LogAttrs(c.Request.Context(), slog.LevelError, "catalog_get_failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, p)
}
