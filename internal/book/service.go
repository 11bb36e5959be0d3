package book

import (
	"context"

	"lendingapi/internal/pagination"
)

// OpenLoanChecker reports whether a book currently has an open loan. The
// loan ledger satisfies this; the catalog uses it to refuse deleting a book
// that is checked out.
type OpenLoanChecker interface {
	ExistsOpenLoanForBook(ctx context.Context, bookID string) (bool, error)
}

// Service provides catalog business logic.
type Service struct {
	repo  Repository
	loans OpenLoanChecker
}

// NewService creates a new catalog service.
func NewService(repo Repository, loans OpenLoanChecker) *Service {
	return &Service{repo: repo, loans: loans}
}

// Create adds a book to the catalog. The ISBN must not already be present.
func (s *Service) Create(ctx context.Context, title, author, isbn string) (Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, isbn)
	if err != nil {
		return Book{}, err
	}
	if exists {
		return Book{}, ErrDuplicateISBN
	}

	b := Book{
		ISBN:   isbn,
		Title:  title,
		Author: author,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Get returns a book by its ID.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// Update overwrites the title and author of an existing book. The ISBN is
// immutable.
func (s *Service) Update(ctx context.Context, id, title, author string) (Book, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return Book{}, err
	}

	b.Title = title
	b.Author = author
	if err := s.repo.Update(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes a book from the catalog. A book with an open loan cannot be
// deleted; closed loan history is kept and keeps referencing the deleted
// book's ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	loaned, err := s.loans.ExistsOpenLoanForBook(ctx, id)
	if err != nil {
		return err
	}
	if loaned {
		return ErrCurrentlyLoaned
	}

	return s.repo.Delete(ctx, id)
}

// Find returns the books matching the filter, paged, plus the total match
// count.
func (s *Service) Find(ctx context.Context, f Filter, p pagination.Request) ([]Book, int, error) {
	return s.repo.List(ctx, f, p)
}
