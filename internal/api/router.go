package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nathan-Yinka/simple-book-api/internal/catalog"
)

// NewRouter wires the catalog endpoints onto a gin engine.
func NewRouter(cat *catalog.Catalog) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := NewHandler(cat)
	r.POST("/books", h.CreateBook)
	r.POST("/users", h.CreateUser)
	r.POST("/borrow", h.BorrowBook)
	r.GET("/users/:user_id/borrowed-books", h.ListBorrowedBooks)

	return r
}
