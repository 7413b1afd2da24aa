package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const cartCountKey = "cart_count"

// CartCount exposes the session cart's total quantity to the layout for
// the nav badge.
func CartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if s, ok := CurrentSession(c); ok {
			n = s.Cart.Count()
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// CartBadge renders the nav badge. Past 99 the number stops being useful.
func CartBadge(count int) string {
	if count > 99 {
		return "🤑"
	}
	return strconv.Itoa(count)
}
