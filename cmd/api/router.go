package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/pkg/container"
)

const (
	permCurator     = "booklist:curator"
	permBooklistGet = "booklist:get"
	permAddToShelf  = "book:add_to_shelf"
	permGetDetails  = "book:get_details"
	permUpdateShelf = "book:update_shelf"
	permDeleteShelf = "book:delete_shelf"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	router.GET("/health", healthCheckHandler(c))

	auth := middleware.Auth(c.Config.Auth.Secret)

	setupBooklistRoutes(router, c, auth)
	setupShelfRoutes(router, c, auth)
	setupSearchRoutes(router, c, auth)

	return router
}

func setupBooklistRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	curator := middleware.RequirePermission(permCurator)
	reader := middleware.RequirePermission(permBooklistGet)

	router.POST("/curated-list", auth, curator, c.BooklistHandler.CreateList)
	router.PUT("/curated-list", auth, curator, c.BooklistHandler.UpdateList)
	router.DELETE("/curated-list/:id", auth, curator, c.BooklistHandler.DeleteList)
	router.GET("/curated-lists", auth, reader, c.BooklistHandler.Lists)

	router.POST("/curated-pick", auth, curator, c.BooklistHandler.CreatePick)
	router.PATCH("/curated-pick/:id", auth, curator, c.BooklistHandler.RepositionPick)
	router.DELETE("/curated-pick/:id", auth, curator, c.BooklistHandler.DeletePick)
	router.GET("/curated-picks", auth, reader, c.BooklistHandler.Picks)
}

func setupShelfRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	router.POST("/book", auth, middleware.RequirePermission(permAddToShelf), c.ShelfHandler.AddBook)
	router.GET("/book/:id", auth, middleware.RequirePermission(permGetDetails), c.ShelfHandler.GetBook)
	router.PATCH("/book/:id", auth, middleware.RequirePermission(permUpdateShelf), c.ShelfHandler.UpdateShelf)
	router.DELETE("/book/:id", auth, middleware.RequirePermission(permDeleteShelf), c.ShelfHandler.RemoveBook)

	router.GET("/booklist/:shelf", auth, middleware.RequirePermission(permBooklistGet), c.ShelfHandler.BooksByShelf)
}

func setupSearchRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	reader := middleware.RequirePermission(permBooklistGet)

	router.GET("/search/books", auth, reader, c.BookHandler.SearchBooks)
	router.GET("/search/shelves", auth, reader, c.ShelfHandler.SearchShelves)

	router.GET("/ny-times/best-sellers/fiction", auth, reader, c.NYTimesHandler.Fiction)
	router.GET("/ny-times/best-sellers/non-fiction", auth, reader, c.NYTimesHandler.NonFiction)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		overall := "ok"
		status := http.StatusOK

		dbStatus := "healthy"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "unhealthy: " + err.Error()
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		// Redis being down only disables caching, so it does not flip the
		// overall status code.
		redisStatus := "healthy"
		if err := c.Cache.Ping(checkCtx); err != nil {
			redisStatus = "unhealthy: " + err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"redis":    redisStatus,
			"version":  c.Config.App.Version,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
