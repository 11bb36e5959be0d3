package book

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendingapi/internal/pagination"
)

type openLoanCheckerFunc func(ctx context.Context, bookID string) (bool, error)

func (f openLoanCheckerFunc) ExistsOpenLoanForBook(ctx context.Context, bookID string) (bool, error) {
	return f(ctx, bookID)
}

func noOpenLoans(context.Context, string) (bool, error) { return false, nil }

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, openLoanCheckerFunc(noOpenLoans))
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByISBN(ctx, "9780132350884").Return(false, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *Book) error {
			b.ID = "b-1"
			return nil
		})

		b, err := service.Create(ctx, "Clean Code", "Robert Martin", "9780132350884")

		require.NoError(t, err)
		assert.Equal(t, "b-1", b.ID)
		assert.Equal(t, "Clean Code", b.Title)
		assert.Equal(t, "Robert Martin", b.Author)
		assert.Equal(t, "9780132350884", b.ISBN)
	})

	t.Run("duplicate isbn creates nothing", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByISBN(ctx, "9780132350884").Return(true, nil)

		_, err := service.Create(ctx, "Clean Code", "Robert Martin", "9780132350884")

		assert.ErrorIs(t, err, ErrDuplicateISBN)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, openLoanCheckerFunc(noOpenLoans))
	ctx := context.Background()

	t.Run("overwrites title and author only", func(t *testing.T) {
		existing := Book{ID: "b-1", ISBN: "111", Title: "Dune", Author: "F. Herbert"}
		mockRepo.EXPECT().Get(ctx, "b-1").Return(existing, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *Book) error {
			assert.Equal(t, "111", b.ISBN)
			return nil
		})

		b, err := service.Update(ctx, "b-1", "Dune Messiah", "Frank Herbert")

		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", b.Title)
		assert.Equal(t, "Frank Herbert", b.Author)
	})

	t.Run("unknown book", func(t *testing.T) {
		mockRepo.EXPECT().Get(ctx, "nope").Return(Book{}, ErrNotFound)

		_, err := service.Update(ctx, "nope", "T", "A")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	ctx := context.Background()

	t.Run("refuses while an open loan exists", func(t *testing.T) {
		service := NewService(mockRepo, openLoanCheckerFunc(func(context.Context, string) (bool, error) {
			return true, nil
		}))
		mockRepo.EXPECT().Get(ctx, "b-1").Return(Book{ID: "b-1"}, nil)

		err := service.Delete(ctx, "b-1")

		assert.ErrorIs(t, err, ErrCurrentlyLoaned)
	})

	t.Run("deletes when history is closed", func(t *testing.T) {
		service := NewService(mockRepo, openLoanCheckerFunc(noOpenLoans))
		mockRepo.EXPECT().Get(ctx, "b-1").Return(Book{ID: "b-1"}, nil)
		mockRepo.EXPECT().Delete(ctx, "b-1").Return(nil)

		assert.NoError(t, service.Delete(ctx, "b-1"))
	})

	t.Run("unknown book", func(t *testing.T) {
		service := NewService(mockRepo, openLoanCheckerFunc(noOpenLoans))
		mockRepo.EXPECT().Get(ctx, "nope").Return(Book{}, ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, "nope"), ErrNotFound)
	})
}

func TestService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, openLoanCheckerFunc(noOpenLoans))
	ctx := context.Background()

	filter := Filter{Title: "dune"}
	page := pagination.Request{Page: 0, Size: 10}
	books := []Book{{ID: "1", Title: "Dune"}, {ID: "2", Title: "Dune Messiah"}}
	mockRepo.EXPECT().List(ctx, filter, page).Return(books, 2, nil)

	got, total, err := service.Find(ctx, filter, page)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)
}
