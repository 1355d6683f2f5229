package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nathan-Yinka/simple-book-api/internal/catalog"
)

// Handler exposes the catalog operations over HTTP.
type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

type createBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

type createUserRequest struct {
	Name string `json:"name" binding:"required"`
}

type borrowRequest struct {
	UserID int64 `json:"userId" binding:"required"`
	BookID int64 `json:"bookId" binding:"required"`
}

// CreateBook handles POST /books.
func (h *Handler) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and author are required."})
		return
	}

	book, err := h.catalog.AddBook(req.Title, req.Author)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required."})
		return
	}

	user, err := h.catalog.AddUser(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// BorrowBook handles POST /borrow.
func (h *Handler) BorrowBook(c *gin.Context) {
	var req borrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and bookId are required."})
		return
	}

	book, user, err := h.catalog.Borrow(req.UserID, req.BookID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Book '%s' borrowed by user '%s'.", book.Title, user.Name),
	})
}

// ListBorrowedBooks handles GET /users/:user_id/borrowed-books.
// A non-integer id behaves like an unknown user.
func (h *Handler) ListBorrowedBooks(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	books, err := h.catalog.BorrowedBy(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// respondError translates catalog errors into HTTP failure responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
	case errors.Is(err, catalog.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found."})
	case errors.Is(err, catalog.ErrAlreadyBorrowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book is already borrowed."})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
