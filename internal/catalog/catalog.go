package catalog

import (
	"fmt"
	"sync"

	"github.com/Nathan-Yinka/simple-book-api/internal/model"
)

// Catalog owns the in-memory library state: registered books and users plus
// the assignment of borrowed books to their current holders. State lives for
// the process lifetime only. A single mutex serializes every operation, so
// each call is atomic from the caller's perspective.
type Catalog struct {
	mu sync.Mutex

	books map[int64]*model.Book
	users map[int64]*model.User
	// borrowed maps book id -> user id. A book id is a key here exactly
	// when that book's IsBorrowed flag is set.
	borrowed map[int64]int64

	nextBookID int64
	nextUserID int64
}

// New returns an empty catalog. Book and user ids are allocated sequentially
// starting at 1, each in its own namespace.
func New() *Catalog {
	return &Catalog{
		books:      make(map[int64]*model.Book),
		users:      make(map[int64]*model.User),
		borrowed:   make(map[int64]int64),
		nextBookID: 1,
		nextUserID: 1,
	}
}

// AddBook registers a new book and returns it with its assigned id.
func (c *Catalog) AddBook(title, author string) (*model.Book, error) {
	if title == "" || author == "" {
		return nil, fmt.Errorf("%w: title and author are required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b := &model.Book{ID: c.nextBookID, Title: title, Author: author}
	c.books[b.ID] = b
	c.nextBookID++

	cp := *b
	return &cp, nil
}

// AddUser registers a new user and returns it with its assigned id.
func (c *Catalog) AddUser(name string) (*model.User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u := &model.User{ID: c.nextUserID, Name: name}
	c.users[u.ID] = u
	c.nextUserID++

	cp := *u
	return &cp, nil
}

// Borrow marks a book as held by a user and returns both records so the
// caller can build a confirmation. Preconditions are checked in a fixed
// order callers can rely on: presence of both ids, then user existence,
// then book existence, then availability. Nothing is mutated on failure.
func (c *Catalog) Borrow(userID, bookID int64) (*model.Book, *model.User, error) {
	if userID == 0 || bookID == 0 {
		return nil, nil, fmt.Errorf("%w: userId and bookId are required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.users[userID]
	if !ok {
		return nil, nil, ErrUserNotFound
	}
	b, ok := c.books[bookID]
	if !ok {
		return nil, nil, ErrBookNotFound
	}
	if b.IsBorrowed {
		return nil, nil, ErrAlreadyBorrowed
	}

	b.IsBorrowed = true
	c.borrowed[bookID] = userID

	bc, uc := *b, *u
	return &bc, &uc, nil
}

// BorrowedBy lists every book currently held by the given user. The order of
// the result is unspecified. The slice is non-nil even when empty so the
// boundary encodes it as a JSON array.
func (c *Catalog) BorrowedBy(userID int64) ([]model.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.users[userID]; !ok {
		return nil, ErrUserNotFound
	}

	out := make([]model.Book, 0)
	for bookID, uid := range c.borrowed {
		if uid != userID {
			continue
		}
		out = append(out, *c.books[bookID])
	}
	return out, nil
}
