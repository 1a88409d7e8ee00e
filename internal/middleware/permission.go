package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
)

// SuperuserOrReadOnly barra escrita para quem não é superusuário
func SuperuserOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isSuperuser, _ := c.MustGet(ContextIsSuperuser).(bool)

		if !booking.SuperuserOrReadOnly(c.Request.Method, isSuperuser) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "superuser_required"})
			return
		}

		c.Next()
	}
}

// SuperuserOnly exige superusuário mesmo para leitura
func SuperuserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isSuperuser, _ := c.MustGet(ContextIsSuperuser).(bool)

		if !isSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "superuser_required"})
			return
		}

		c.Next()
	}
}
