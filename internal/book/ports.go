package book

import (
	"context"

	"lendingapi/internal/pagination"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	Get(ctx context.Context, id string) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filter, p pagination.Request) ([]Book, int, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
