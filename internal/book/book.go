package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned when creating a book with an ISBN already in
// the catalog.
var ErrDuplicateISBN = errors.New("isbn already created")

// ErrCurrentlyLoaned is returned when deleting a book that has an open loan.
var ErrCurrentlyLoaned = errors.New("book is currently loaned")

// Book represents a catalog entry.
type Book struct {
	ID        string    `json:"id"`
	ISBN      string    `json:"isbn"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the optional search predicates for listing books. Populated
// fields match as case-insensitive substrings and combine with AND; empty
// fields impose no constraint.
type Filter struct {
	Title  string
	Author string
	ISBN   string
}
