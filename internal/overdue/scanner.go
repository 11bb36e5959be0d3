// Package overdue implements the periodic sweep that reminds customers of
// open loans older than a configured threshold.
package overdue

import (
	"context"
	"fmt"
	"log"
	"time"

	"lendingapi/internal/loan"
)

// LoanSource is the slice of the loan ledger the scanner reads.
type LoanSource interface {
	FindOpenLoansOlderThan(ctx context.Context, cutoff time.Time) ([]loan.Loan, error)
}

// Notifier delivers one reminder message to a batch of recipients.
type Notifier interface {
	SendReminder(message string, recipients []string) error
}

// Scanner is stateless: every sweep re-selects all overdue open loans and
// re-notifies them. There is no de-duplication across runs; two sweeps in a
// row send duplicate reminders, which is accepted behavior.
type Scanner struct {
	loans     LoanSource
	notifier  Notifier
	threshold time.Duration
	message   string
	now       func() time.Time
}

func NewScanner(loans LoanSource, notifier Notifier, threshold time.Duration, message string) *Scanner {
	return &Scanner{
		loans:     loans,
		notifier:  notifier,
		threshold: threshold,
		message:   message,
		now:       time.Now,
	}
}

// Sweep selects loans overdue at the time of the call and sends one batch
// reminder. A delivery failure is reported but never touches loan state.
func (s *Scanner) Sweep(ctx context.Context) error {
	cutoff := s.now().Add(-s.threshold)

	overdue, err := s.loans.FindOpenLoansOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("select overdue loans: %w", err)
	}

	recipients := make([]string, 0, len(overdue))
	for _, l := range overdue {
		if l.CustomerEmail != "" {
			recipients = append(recipients, l.CustomerEmail)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	if err := s.notifier.SendReminder(s.message, recipients); err != nil {
		return fmt.Errorf("send reminders: %w", err)
	}
	log.Printf("overdue sweep: reminded %d of %d overdue loans", len(recipients), len(overdue))
	return nil
}

// Run sweeps on the given interval until the context is canceled.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Printf("overdue sweep failed: %v", err)
			}
		}
	}
}
