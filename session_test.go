package shopledger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	store := NewMemStore()
	if err := Setup(store, "alice", "secret"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !store.Has(UserKey("alice")) {
		t.Errorf("no document stored for the new account")
	}

	testCases := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "duplicate", username: "alice", password: "other", want: ErrDuplicateAccount},
		{name: "empty username", username: "", password: "x", want: ErrInvalidCredentials},
		{name: "empty password", username: "bob", password: "", want: ErrInvalidCredentials},
		{name: "username with path separator", username: "a/b", password: "x", want: ErrInvalidCredentials},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Setup(store, tc.username, tc.password); !errors.Is(err, tc.want) {
				t.Errorf("Setup(%q, %q) = %v, want %v", tc.username, tc.password, err, tc.want)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	store := NewMemStore()
	if err := Setup(store, "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	if _, err := Login(store, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := Login(store, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with unknown user = %v, want ErrInvalidCredentials", err)
	}

	session, err := Login(store, "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.User() != "alice" {
		t.Errorf("User() = %q, want alice", session.User())
	}
	if current, _, _ := store.Get(currentUserKey); string(current) != "alice" {
		t.Errorf("current-user = %q, want alice", current)
	}
}

func TestResume(t *testing.T) {
	store := NewMemStore()
	if err := Setup(store, "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	// Nobody logged in yet.
	if session, err := Resume(store); err != nil || session != nil {
		t.Fatalf("Resume before login = %v, %v; want nil, nil", session, err)
	}

	if _, err := Login(store, "alice", "secret"); err != nil {
		t.Fatal(err)
	}
	session, err := Resume(store)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if session == nil || session.User() != "alice" {
		t.Fatalf("Resume = %+v, want alice's session", session)
	}

	// A stale current-user marker pointing at a removed account is cleared.
	if err := store.Remove(UserKey("alice")); err != nil {
		t.Fatal(err)
	}
	if session, err := Resume(store); err != nil || session != nil {
		t.Errorf("Resume with stale marker = %v, %v; want nil, nil", session, err)
	}
	if store.Has(currentUserKey) {
		t.Errorf("stale current-user marker not cleared")
	}
}

func TestSession_MutationsPersistImmediately(t *testing.T) {
	session, store := newTestSession(t, "alice")

	sale := mustAddSale(t, session, SaleInput{
		CustomerName: "Ann", Product: "Widget", Quantity: 3, Price: USD(10),
		PaymentMethod: Cash, SaleDate: MustParseDate("2024-01-05"),
	})
	debt := mustAddDebt(t, session, DebtInput{
		Customer: "Bob", Amount: USD(5), Status: Pending,
		DueDate: MustParseDate("2024-02-01"),
	})

	// A second session over the same store sees everything: each mutation
	// saved the whole document before returning.
	reopened, err := Resume(store)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if _, ok := reopened.Ledger().FindSale(sale.ID); !ok {
		t.Errorf("sale %d not visible after reopening", sale.ID)
	}
	if _, ok := reopened.Ledger().FindDebt(debt.ID); !ok {
		t.Errorf("debt %d not visible after reopening", debt.ID)
	}

	if err := session.DeleteSale(sale.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	reopened, err = Resume(store)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reopened.Ledger().FindSale(sale.ID); ok {
		t.Errorf("deleted sale %d still persisted", sale.ID)
	}
}

func TestSession_MutationsPreserveCredentialMarker(t *testing.T) {
	session, store := newTestSession(t, "alice")
	before, _, _ := store.Get(UserKey("alice"))
	marker := markerOf(t, before)

	mustAddSale(t, session, SaleInput{Product: "Widget", Quantity: 1, Price: USD(1)})
	if err := session.DeleteSale(42); err != nil {
		t.Fatal(err)
	}

	after, _, _ := store.Get(UserKey("alice"))
	if got := markerOf(t, after); got != marker {
		t.Errorf("credential marker changed across mutations: %q -> %q", marker, got)
	}
	// The marker still matches the original password.
	if _, err := Login(store, "alice", "secret"); err != nil {
		t.Errorf("Login after mutations: %v", err)
	}
}

// markerOf pulls the raw password field out of a stored document.
func markerOf(t *testing.T, doc []byte) string {
	t.Helper()
	decoded, err := decodeDocument(doc)
	if err != nil {
		t.Fatalf("decodeDocument: %v", err)
	}
	return string(decoded.Password)
}

func TestSession_ReplaceSale(t *testing.T) {
	session, _ := newTestSession(t, "alice")
	first := mustAddSale(t, session, SaleInput{Product: "old", Quantity: 1, Price: USD(1),
		SaleDate: MustParseDate("2024-01-05")})
	mustAddSale(t, session, SaleInput{Product: "other", Quantity: 1, Price: USD(1),
		SaleDate: MustParseDate("2024-01-05")})

	replaced, err := session.ReplaceSale(first.ID, SaleInput{Product: "new", Quantity: 2,
		Price: USD(3), SaleDate: MustParseDate("2024-01-05")})
	if err != nil {
		t.Fatalf("ReplaceSale: %v", err)
	}

	if replaced.ID == first.ID {
		t.Errorf("replacement kept the old id %d; edit must assign a fresh one", first.ID)
	}
	if !replaced.Total.Equal(USD(6)) {
		t.Errorf("replacement total = %v, want $6.00", replaced.Total)
	}
	if _, ok := session.Ledger().FindSale(first.ID); ok {
		t.Errorf("old record still present after edit")
	}
	// The edited record moves to the end of the sequence.
	var order []string
	for _, s := range session.Ledger().Sales(AnySale) {
		order = append(order, s.Product)
	}
	if len(order) != 2 || order[0] != "other" || order[1] != "new" {
		t.Errorf("order after edit = %v, want [other new]", order)
	}
}

func TestSession_Logout(t *testing.T) {
	session, store := newTestSession(t, "alice")
	if err := session.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.Has(currentUserKey) {
		t.Errorf("current-user marker still present after logout")
	}
	if resumed, err := Resume(store); err != nil || resumed != nil {
		t.Errorf("Resume after logout = %v, %v; want nil, nil", resumed, err)
	}
	// The account document itself is untouched.
	if !store.Has(UserKey("alice")) {
		t.Errorf("logout removed the account document")
	}
}

func TestSession_ImportReplacesWholesale(t *testing.T) {
	session, store := newTestSession(t, "alice")
	mustAddSale(t, session, SaleInput{Product: "before", Quantity: 1, Price: USD(1),
		SaleDate: MustParseDate("2024-01-01")})

	var backup bytes.Buffer
	if err := session.Export(&backup); err != nil {
		t.Fatalf("Export: %v", err)
	}

	mustAddSale(t, session, SaleInput{Product: "after", Quantity: 1, Price: USD(1),
		SaleDate: MustParseDate("2024-01-02")})

	if err := session.Import(&backup); err != nil {
		t.Fatalf("Import: %v", err)
	}
	var products []string
	for _, s := range session.Ledger().Sales(AnySale) {
		products = append(products, s.Product)
	}
	if len(products) != 1 || products[0] != "before" {
		t.Errorf("ledger after import = %v, want the backup contents only", products)
	}

	// The replacement is persisted.
	reopened, err := Resume(store)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for range reopened.Ledger().Sales(AnySale) {
		count++
	}
	if count != 1 {
		t.Errorf("persisted ledger has %d sales after import, want 1", count)
	}
}

func TestSession_ImportForeignLeavesLedgerUnchanged(t *testing.T) {
	alice, _ := newTestSession(t, "alice")
	mustAddSale(t, alice, SaleInput{Product: "theirs", Quantity: 1, Price: USD(1)})
	var backup bytes.Buffer
	if err := alice.Export(&backup); err != nil {
		t.Fatal(err)
	}

	bob, bobStore := newTestSession(t, "bob")
	kept := mustAddSale(t, bob, SaleInput{Product: "mine", Quantity: 1, Price: USD(1)})

	err := bob.Import(strings.NewReader(backup.String()))
	if !errors.Is(err, ErrForeignAccountData) {
		t.Fatalf("Import = %v, want ErrForeignAccountData", err)
	}
	if _, ok := bob.Ledger().FindSale(kept.ID); !ok {
		t.Errorf("bob's ledger lost records on a rejected import")
	}
	reopened, err := Resume(bobStore)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reopened.Ledger().FindSale(kept.ID); !ok {
		t.Errorf("bob's persisted ledger changed on a rejected import")
	}
}
