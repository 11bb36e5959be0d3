package loan

import (
	"context"
	"time"

	"lendingapi/internal/book"
	"lendingapi/internal/pagination"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=loan

// Repository defines the contract for loan storage.
//
// Create must be atomic with respect to concurrent creations for the same
// book: when an open loan already exists, the insert fails and Create
// returns ErrBookAlreadyLoaned.
type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Get(ctx context.Context, id string) (Loan, error)
	SetReturned(ctx context.Context, id string, returned bool) error
	List(ctx context.Context, f Filter, p pagination.Request) ([]Loan, int, error)
	ListByBook(ctx context.Context, bookID string, p pagination.Request) ([]Loan, int, error)
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]Loan, error)
	ExistsOpenForBook(ctx context.Context, bookID string) (bool, error)
}

// BookDirectory is the slice of the catalog the ledger needs: resolving the
// book a loan refers to.
type BookDirectory interface {
	Get(ctx context.Context, id string) (book.Book, error)
}
