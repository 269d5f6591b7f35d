package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"animehub/internal/engine"
)

type Handler struct {
	Engine *engine.Engine
	Logger *logrus.Entry
}

func NewHandler(eng *engine.Engine, logger *logrus.Entry) *Handler {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Handler{Engine: eng, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/health", h.health)
	r.GET("/titles", h.titles)
	r.GET("/recommend", h.recommend)
	r.GET("/search", h.search)
	r.GET("/info", h.info)
	r.GET("/random", h.random)
	r.GET("/stats", h.stats)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":               "Endpoint not found",
			"available_endpoints": []string{"/", "/titles", "/recommend", "/search", "/info", "/random", "/stats"},
		})
	})
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Anime Recommendation API",
		"endpoints": gin.H{
			"/titles":    "GET - List all available anime titles",
			"/recommend": "GET - Get recommendations (param: title, top_n)",
			"/search":    "GET - Search titles (param: query)",
			"/info":      "GET - Get anime info (param: title)",
			"/random":    "GET - Get random anime (param: count)",
			"/stats":     "GET - Get dataset statistics",
		},
		"examples": gin.H{
			"titles":    "/titles",
			"recommend": "/recommend?title=Naruto&top_n=5",
			"search":    "/search?query=one piece",
			"info":      "/info?title=Naruto",
		},
		"total_anime": h.Engine.Len(),
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"anime":    h.Engine.Len(),
		"features": h.Engine.VocabSize(),
	})
}

func (h *Handler) titles(c *gin.Context) {
	list := h.Engine.Titles()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(list),
		"titles": list,
	})
}

func (h *Handler) recommend(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing 'title' parameter",
			"example": "/recommend?title=Naruto&top_n=5",
		})
		return
	}

	topN := clamp(parseInt(c.Query("top_n"), 5), 1, 50)
	h.Logger.Infof("Recommendations for %q (top %d)", title, topN)

	results := h.Engine.Recommend(title, topN)
	if len(results) == 0 {
		// Unknown title; offer substring matches as suggestions.
		c.JSON(http.StatusNotFound, gin.H{
			"error":       fmt.Sprintf("Anime '%s' not found", title),
			"suggestions": h.Engine.SearchTitles(title, 5),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":           title,
		"count":           len(results),
		"recommendations": results,
	})
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing 'query' parameter",
			"example": "/search?query=naruto&limit=20",
		})
		return
	}

	limit := clamp(parseInt(c.Query("limit"), 20), 1, 100)
	matches := h.Engine.SearchTitles(query, limit)
	h.Logger.Infof("Search for %q: %d matches", query, len(matches))

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(matches),
		"results": matches,
	})
}

func (h *Handler) info(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing 'title' parameter",
			"example": "/info?title=Naruto",
		})
		return
	}

	anime, ok := h.Engine.Info(title)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Anime '%s' not found", title),
		})
		return
	}
	c.JSON(http.StatusOK, anime)
}

func (h *Handler) random(c *gin.Context) {
	count := clamp(parseInt(c.Query("count"), 1), 1, 20)
	titles := h.Engine.GetRandom(count)

	c.JSON(http.StatusOK, gin.H{
		"count":  len(titles),
		"titles": titles,
	})
}

func (h *Handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.DatasetStats())
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
