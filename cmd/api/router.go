package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"publisher-catalog/internal/shared/middleware"
	"publisher-catalog/internal/shared/response"
	"publisher-catalog/pkg/container"
)

// SetupRouter assembles the middleware chain and the /api/v1 routes.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusMethodNotAllowed,
			fmt.Sprintf("Method '%s' not supported", ctx.Request.Method))
	})
	router.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusNotFound, "Resource not found")
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", c.HealthHandler.Check)

		authors := v1.Group("/authors")
		{
			authors.POST("", c.AuthorHandler.Create)
			authors.GET("", c.AuthorHandler.List)
			authors.GET("/:id", c.AuthorHandler.GetByID)
			authors.GET("/:id/exists", c.AuthorHandler.Exists)
			authors.DELETE("/:id", c.AuthorHandler.Delete)
		}

		books := v1.Group("/books")
		{
			books.POST("", c.BookHandler.Create)
			books.GET("", c.BookHandler.List)
			books.GET("/:id", c.BookHandler.GetByID)
			books.PUT("/:id", c.BookHandler.Update)
			books.DELETE("/:id", c.BookHandler.Delete)
			books.GET("/:id/exists", c.BookHandler.Exists)
			books.GET("/isbn/:isbn", c.BookHandler.GetByISBN)
			books.GET("/author/:authorId", c.BookHandler.ListByAuthor)
		}

		magazines := v1.Group("/magazines")
		{
			magazines.POST("", c.MagazineHandler.Create)
			magazines.GET("", c.MagazineHandler.List)
			magazines.GET("/:id", c.MagazineHandler.GetByID)
			magazines.PUT("/:id", c.MagazineHandler.Update)
			magazines.DELETE("/:id", c.MagazineHandler.Delete)
			magazines.GET("/:id/exists", c.MagazineHandler.Exists)
		}

		publications := v1.Group("/publications")
		{
			publications.GET("", c.PublicationHandler.List)
			publications.GET("/grouped", c.PublicationHandler.Grouped)
			publications.GET("/search/title", c.PublicationHandler.SearchByTitle)
			publications.GET("/title/:title/exists", c.PublicationHandler.ExistsByTitle)
			publications.GET("/:id", c.PublicationHandler.GetByID)
			publications.GET("/:id/exists", c.PublicationHandler.Exists)
			publications.DELETE("/:id", c.PublicationHandler.Delete)
		}
	}

	return router
}
