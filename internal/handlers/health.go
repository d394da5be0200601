package handlers

import "github.com/gin-gonic/gin"

// Health is the liveness endpoint.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(200, "Zap is Shifting..!!!")
	}
}
