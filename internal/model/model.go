package model

// Book represents a catalog item borrowable by at most one user at a time.
type Book struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	IsBorrowed bool   `json:"is_borrowed"`
}

// User represents a registered library patron.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
