package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codyseavey/gingerdex/internal/api/handlers"
	"github.com/codyseavey/gingerdex/internal/metrics"
	"github.com/codyseavey/gingerdex/internal/services"
)

// RouterConfig carries the presentation settings for SetupRouter.
type RouterConfig struct {
	CORSOrigins      []string
	FrontendDistPath string
}

func SetupRouter(cfg RouterConfig, dexService *services.DexService, packService *services.PackService) *gin.Engine {
	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	serveFrontend := cfg.FrontendDistPath != "" && dirExists(cfg.FrontendDistPath)

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))

	cardHandler := handlers.NewCardHandler(dexService)
	collectionHandler := handlers.NewCollectionHandler(dexService)
	packHandler := handlers.NewPackHandler(packService)

	api := router.Group("/api")
	{
		api.GET("/stats", cardHandler.GetStats)
		api.GET("/filters", cardHandler.GetFilters)
		api.GET("/compare", cardHandler.CompareCards)
		api.GET("/leaderboard", collectionHandler.GetLeaderboard)

		cards := api.Group("/cards")
		{
			cards.GET("", cardHandler.ListCards)
			cards.GET("/:key", cardHandler.GetCard)
		}

		trainers := api.Group("/trainers")
		{
			trainers.GET("/:username", collectionHandler.GetTrainer)
			trainers.GET("/:username/achievements", collectionHandler.GetAchievements)
		}

		packs := api.Group("/packs")
		{
			packs.POST("", packHandler.OpenPack)
			packs.GET("/recent", packHandler.RecentPacks)
		}
	}

	// Health check reports whether the snapshot loaded; the process stays up
	// either way so the frontend can show the error.
	router.GET("/health", func(c *gin.Context) {
		if _, err := dexService.Catalog(); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if serveFrontend {
		frontendPath := cfg.FrontendDistPath
		indexPath := filepath.Join(frontendPath, "index.html")

		router.Static("/assets", filepath.Join(frontendPath, "assets"))
		router.Static("/cards", filepath.Join(frontendPath, "cards"))
		router.StaticFile("/favicon.ico", filepath.Join(frontendPath, "favicon.ico"))

		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})

		// SPA fallback - serve index.html for all non-API routes
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.File(indexPath)
		})
	}

	return router
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
