package middleware

import (
	"log/slog"
	"strings"

	"ortomat-backend/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Provider callbacks and controller connections never come from a browser.
var corsExemptPrefixes = []string{
	"/api/payments/webhook/",
	"/ws/",
}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(cfg.ExposeHeaders, headerRequestID),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	slog.Info("cors configured", "allow_origins", cfg.AllowOrigins, "exempt", corsExemptPrefixes)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range corsExemptPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		handler(c)
	}
}
