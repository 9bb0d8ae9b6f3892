package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexwire/lexwire/app/articles"
)

func (h *Handler) GetArticles(c *gin.Context) {
	result, err := h.resolver.All(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "get_articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetFeaturedArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = articles.DefaultFeaturedLimit
	}

	result, err := h.resolver.Featured(c.Request.Context(), limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_featured", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetArticlesByCategory(c *gin.Context) {
	categorySlug := c.Param("categorySlug")

	result, err := h.resolver.ByCategory(c.Request.Context(), categorySlug)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_category", "category", categorySlug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetArticlesBySubcategory(c *gin.Context) {
	categorySlug := c.Param("categorySlug")
	subcategorySlug := c.Param("subcategorySlug")

	result, err := h.resolver.ByCategoryAndSubcategory(c.Request.Context(), categorySlug, subcategorySlug)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_subcategory",
			"category", categorySlug, "subcategory", subcategorySlug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetRelatedArticles(c *gin.Context) {
	category := c.Param("category")
	excludeSlug := c.Query("excludeSlug")

	result, err := h.resolver.Related(c.Request.Context(), category, excludeSlug)
	if err != nil {
		slog.Error("Database error", "operation", "get_related", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetArticlesByTag(c *gin.Context) {
	tagName := c.Param("tagName")

	result, err := h.resolver.ByTag(c.Request.Context(), tagName)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_tag", "tag", tagName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.resolver.BySlug(c.Request.Context(), slug)
	if errors.Is(err, articles.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Article not found"})
		return
	}
	if err != nil {
		slog.Error("Database error", "operation", "get_by_slug", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetHealthDB(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		slog.Error("Database health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"database": "ok"})
}
