package loan

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendingapi/internal/book"
	"lendingapi/internal/pagination"
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	testBook := book.Book{ID: "b-1", ISBN: "9780132350884", Title: "Clean Code"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		mockBooks := NewMockBookDirectory(ctrl)
		service := NewService(mockRepo, mockBooks)

		mockBooks.EXPECT().Get(ctx, "b-1").Return(testBook, nil)
		mockRepo.EXPECT().ExistsOpenForBook(ctx, "b-1").Return(false, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *Loan) error {
			l.ID = "l-1"
			l.LoanDate = time.Now()
			return nil
		})

		l, err := service.Create(ctx, "b-1", "Alice", "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, "l-1", l.ID)
		assert.Equal(t, "b-1", l.BookID)
		assert.Equal(t, "Alice", l.Customer)
		assert.False(t, l.Returned)
		assert.False(t, l.LoanDate.IsZero())
	})

	t.Run("book already loaned creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		mockBooks := NewMockBookDirectory(ctrl)
		service := NewService(mockRepo, mockBooks)

		mockBooks.EXPECT().Get(ctx, "b-1").Return(testBook, nil)
		mockRepo.EXPECT().ExistsOpenForBook(ctx, "b-1").Return(true, nil)

		_, err := service.Create(ctx, "b-1", "Bob", "")

		assert.ErrorIs(t, err, ErrBookAlreadyLoaned)
	})

	t.Run("concurrent loser surfaces already loaned", func(t *testing.T) {
		// The pre-check saw no open loan, but another request inserted one
		// first and the storage layer rejected this insert.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		mockBooks := NewMockBookDirectory(ctrl)
		service := NewService(mockRepo, mockBooks)

		mockBooks.EXPECT().Get(ctx, "b-1").Return(testBook, nil)
		mockRepo.EXPECT().ExistsOpenForBook(ctx, "b-1").Return(false, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(ErrBookAlreadyLoaned)

		_, err := service.Create(ctx, "b-1", "Bob", "")

		assert.ErrorIs(t, err, ErrBookAlreadyLoaned)
	})

	t.Run("unknown book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		mockBooks := NewMockBookDirectory(ctrl)
		service := NewService(mockRepo, mockBooks)

		mockBooks.EXPECT().Get(ctx, "nope").Return(book.Book{}, book.ErrNotFound)

		_, err := service.Create(ctx, "nope", "Bob", "")

		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_Return(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent for an already returned loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo, NewMockBookDirectory(ctrl))

		mockRepo.EXPECT().SetReturned(ctx, "l-1", true).Return(nil).Times(2)

		require.NoError(t, service.Return(ctx, "l-1", true))
		require.NoError(t, service.Return(ctx, "l-1", true))
	})

	t.Run("unknown loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo, NewMockBookDirectory(ctrl))

		mockRepo.EXPECT().SetReturned(ctx, "nope", true).Return(ErrNotFound)

		assert.ErrorIs(t, service.Return(ctx, "nope", true), ErrNotFound)
	})
}

func TestService_Find(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, NewMockBookDirectory(ctrl))

	filter := Filter{ISBN: "9780132350884", Customer: "Alice"}
	page := pagination.Request{Page: 0, Size: 10}
	mockRepo.EXPECT().List(ctx, filter, page).Return([]Loan{{ID: "l-1"}}, 1, nil)

	loans, total, err := service.Find(ctx, filter, page)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, loans, 1)
}

func TestService_FindOpenLoansOlderThan(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, NewMockBookDirectory(ctrl))

	cutoff := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	mockRepo.EXPECT().ListOpenOlderThan(ctx, cutoff).Return([]Loan{{ID: "l-1"}}, nil)

	loans, err := service.FindOpenLoansOlderThan(ctx, cutoff)

	require.NoError(t, err)
	assert.Len(t, loans, 1)
}

func TestService_ExistsOpenLoanForBook(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, NewMockBookDirectory(ctrl))

	mockRepo.EXPECT().ExistsOpenForBook(ctx, "b-1").Return(true, nil)

	open, err := service.ExistsOpenLoanForBook(ctx, "b-1")

	require.NoError(t, err)
	assert.True(t, open)
}
