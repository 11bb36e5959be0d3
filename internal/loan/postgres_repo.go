package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lendingapi/internal/pagination"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts an open loan. The loans_one_open_per_book partial unique
// index rejects a second open loan for the same book, so two concurrent
// creations cannot both succeed; the loser gets ErrBookAlreadyLoaned.
func (r *PostgresRepo) Create(ctx context.Context, l *Loan) error {
	const query = `
		INSERT INTO loans (id, book_id, customer, customer_email, loan_date, returned)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), FALSE)
		RETURNING id, loan_date`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, l.BookID, l.Customer, l.CustomerEmail).
		Scan(&l.ID, &l.LoanDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrBookAlreadyLoaned
		}
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Loan, error) {
	const query = `
		SELECT id, book_id, customer, customer_email, loan_date, returned
		FROM loans
		WHERE id = $1`

	var l Loan
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).
		Scan(&l.ID, &l.BookID, &l.Customer, &l.CustomerEmail, &l.LoanDate, &l.Returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNotFound
		}
		return Loan{}, err
	}
	return l, nil
}

func (r *PostgresRepo) SetReturned(ctx context.Context, id string, returned bool) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `UPDATE loans SET returned = $1 WHERE id = $2`, returned, id)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List filters loans by exact book ISBN OR customer substring. The two
// predicates combine with OR; when neither is set every loan matches.
func (r *PostgresRepo) List(ctx context.Context, f Filter, p pagination.Request) ([]Loan, int, error) {
	clauses := []string{}
	args := []any{}
	argn := 1

	if f.ISBN != "" {
		clauses = append(clauses, fmt.Sprintf("b.isbn = $%d", argn))
		args = append(args, f.ISBN)
		argn++
	}
	if f.Customer != "" {
		clauses = append(clauses, fmt.Sprintf("l.customer LIKE $%d", argn))
		args = append(args, "%"+f.Customer+"%")
		argn++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " OR ")
	}

	return r.listJoined(ctx, where, args, argn, p)
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string, p pagination.Request) ([]Loan, int, error) {
	return r.listJoined(ctx, "WHERE l.book_id = $1", []any{bookID}, 2, p)
}

func (r *PostgresRepo) listJoined(ctx context.Context, where string, args []any, argn int, p pagination.Request) ([]Loan, int, error) {
	countSQL := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM loans l
		LEFT JOIN books b ON b.id = l.book_id
		%s`, where)

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "ASC"
	if p.Desc {
		order = "DESC"
	}

	dataSQL := fmt.Sprintf(`
		SELECT l.id, l.book_id, l.customer, l.customer_email, l.loan_date, l.returned,
		       b.isbn, b.title, b.author
		FROM loans l
		LEFT JOIN books b ON b.id = l.book_id
		%s
		ORDER BY l.loan_date %s
		LIMIT $%d OFFSET $%d`,
		where, order, argn, argn+1)
	args = append(args, p.Limit(), p.Offset())

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Loan{}
	for rows.Next() {
		var l Loan
		var isbn, title, author *string
		if err := rows.Scan(&l.ID, &l.BookID, &l.Customer, &l.CustomerEmail, &l.LoanDate, &l.Returned,
			&isbn, &title, &author); err != nil {
			return nil, 0, err
		}
		// The book may have been deleted after the loan closed; the loan row
		// survives with an orphaned book reference.
		if isbn != nil {
			l.Book = &BookInfo{ISBN: *isbn, Title: *title, Author: *author}
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]Loan, error) {
	const query = `
		SELECT id, book_id, customer, customer_email, loan_date, returned
		FROM loans
		WHERE NOT returned AND loan_date < $1
		ORDER BY loan_date`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Loan{}
	for rows.Next() {
		var l Loan
		if err := rows.Scan(&l.ID, &l.BookID, &l.Customer, &l.CustomerEmail, &l.LoanDate, &l.Returned); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ExistsOpenForBook(ctx context.Context, bookID string) (bool, error) {
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx,
		`SELECT EXISTS (SELECT 1 FROM loans WHERE book_id = $1 AND NOT returned)`, bookID).
		Scan(&exists)
	return exists, err
}
