package loan

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a loan is not found.
var ErrNotFound = errors.New("loan not found")

// ErrBookNotFound is returned when creating a loan for a book that does not
// exist.
var ErrBookNotFound = errors.New("book not found for loan")

// ErrBookAlreadyLoaned is returned when the target book already has an open
// loan. A book has at most one open loan at a time.
var ErrBookAlreadyLoaned = errors.New("book already loaned")

// Loan records one checkout of a book. Loans are append-only: once created
// they are never deleted, only flipped to returned.
type Loan struct {
	ID            string    `json:"id"`
	BookID        string    `json:"book_id"`
	Customer      string    `json:"customer"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	LoanDate      time.Time `json:"loan_date"`
	Returned      bool      `json:"returned"`

	// Book carries the referenced book's data when the loan was loaded by a
	// list query that joins the catalog.
	Book *BookInfo `json:"book,omitempty"`
}

// BookInfo is the slice of catalog data embedded in loan listings.
type BookInfo struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Filter holds the optional search predicates for listing loans. A loan
// matches when its book's ISBN equals ISBN exactly OR its customer contains
// Customer as a substring. The OR combination and the exact ISBN match are
// kept as-is for compatibility with existing callers.
type Filter struct {
	ISBN     string
	Customer string
}
