package shopledger

import (
	"testing"
	"time"
)

// frozenClock returns a clock stuck on the given instant. The ledger must
// keep ids unique even when the clock never advances.
func frozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// newTestSession creates an account and opens a session on a MemStore, with
// a deterministic clock.
func newTestSession(t *testing.T, username string) (*Session, MemStore) {
	t.Helper()

	store := NewMemStore()
	if err := Setup(store, username, "secret"); err != nil {
		t.Fatalf("Setup(%q) failed: %v", username, err)
	}
	session, err := Login(store, username, "secret")
	if err != nil {
		t.Fatalf("Login(%q) failed: %v", username, err)
	}
	session.now = frozenClock(time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC))
	return session, store
}

// mustAddSale is a shorthand for tests that only care about the stored record.
func mustAddSale(t *testing.T, s *Session, in SaleInput) Sale {
	t.Helper()
	sale, err := s.AddSale(in)
	if err != nil {
		t.Fatalf("AddSale failed: %v", err)
	}
	return sale
}

// mustAddDebt is a shorthand for tests that only care about the stored record.
func mustAddDebt(t *testing.T, s *Session, in DebtInput) Debt {
	t.Helper()
	debt, err := s.AddDebt(in)
	if err != nil {
		t.Fatalf("AddDebt failed: %v", err)
	}
	return debt
}
