package loan

import (
	"context"
	"errors"
	"time"

	"lendingapi/internal/book"
	"lendingapi/internal/pagination"
)

// Service provides loan ledger business logic.
type Service struct {
	repo  Repository
	books BookDirectory
}

// NewService creates a new loan service.
func NewService(repo Repository, books BookDirectory) *Service {
	return &Service{repo: repo, books: books}
}

// Create opens a loan for a book. The book must exist and must not have an
// open loan already. The pre-check handles the common case; the storage
// layer's partial unique index is what makes the check-then-insert safe
// against concurrent creations for the same book.
func (s *Service) Create(ctx context.Context, bookID, customer, customerEmail string) (Loan, error) {
	if _, err := s.books.Get(ctx, bookID); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return Loan{}, ErrBookNotFound
		}
		return Loan{}, err
	}

	open, err := s.repo.ExistsOpenForBook(ctx, bookID)
	if err != nil {
		return Loan{}, err
	}
	if open {
		return Loan{}, ErrBookAlreadyLoaned
	}

	l := Loan{
		BookID:        bookID,
		Customer:      customer,
		CustomerEmail: customerEmail,
		Returned:      false,
	}
	if err := s.repo.Create(ctx, &l); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// Get returns a loan by its ID.
func (s *Service) Get(ctx context.Context, id string) (Loan, error) {
	return s.repo.Get(ctx, id)
}

// Return sets the returned flag of an existing loan. Setting it to true on
// an already-returned loan is a no-op, not an error.
func (s *Service) Return(ctx context.Context, id string, returned bool) error {
	return s.repo.SetReturned(ctx, id, returned)
}

// Find returns the loans matching the filter, paged, plus the total match
// count.
func (s *Service) Find(ctx context.Context, f Filter, p pagination.Request) ([]Loan, int, error) {
	return s.repo.List(ctx, f, p)
}

// ListByBook returns the loan history of one book, paged.
func (s *Service) ListByBook(ctx context.Context, bookID string, p pagination.Request) ([]Loan, int, error) {
	return s.repo.ListByBook(ctx, bookID, p)
}

// FindOpenLoansOlderThan returns every open loan whose loan date is strictly
// before cutoff. The overdue sweep feeds on this.
func (s *Service) FindOpenLoansOlderThan(ctx context.Context, cutoff time.Time) ([]Loan, error) {
	return s.repo.ListOpenOlderThan(ctx, cutoff)
}

// ExistsOpenLoanForBook reports whether the book is currently checked out.
func (s *Service) ExistsOpenLoanForBook(ctx context.Context, bookID string) (bool, error) {
	return s.repo.ExistsOpenForBook(ctx, bookID)
}
