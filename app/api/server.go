package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP engine with all routes configured.
func NewServer(handler *Handler, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())
	r.Use(corsMiddleware(allowedOrigins))

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	// Static segments must be registered alongside the :slug parameter;
	// gin routes /articles/featured and /articles/:slug correctly.
	r.GET("/articles", handler.GetArticles)
	r.GET("/articles/featured", handler.GetFeaturedArticles)
	r.GET("/articles/category/:categorySlug", handler.GetArticlesByCategory)
	r.GET("/articles/category/:categorySlug/subcategory/:subcategorySlug", handler.GetArticlesBySubcategory)
	r.GET("/articles/related/:category", handler.GetRelatedArticles)
	r.GET("/articles/tag/:tagName", handler.GetArticlesByTag)
	r.GET("/articles/:slug", handler.GetArticleBySlug)

	r.GET("/health", handler.GetHealth)
	r.GET("/health/db", handler.GetHealthDB)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Lexwire API",
			"description": "Read-only JSON API for legal news articles",
			"endpoints": map[string]string{
				"articles":    "/articles",
				"featured":    "/articles/featured?limit=<n>",
				"category":    "/articles/category/<categorySlug>",
				"subcategory": "/articles/category/<categorySlug>/subcategory/<subcategorySlug>",
				"related":     "/articles/related/<category>?excludeSlug=<slug>",
				"tag":         "/articles/tag/<tagName>",
				"article":     "/articles/<slug>",
				"health":      "/health",
				"health_db":   "/health/db",
			},
		})
	})

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// corsMiddleware allow-lists origins from the site configuration. A
// lone "*" entry opens the API to any origin.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
