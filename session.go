package shopledger

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// Session is one account's interactive sitting: the account name, its
// in-memory ledger, and the store everything persists to.
//
// There is exactly one session at a time and no concurrent access, so the
// session carries no locking. Every mutating operation applies to the
// in-memory ledger and immediately saves the whole document; an operation
// is committed only once the save succeeded.
type Session struct {
	store  Store
	user   string
	marker json.RawMessage // credential marker, round-tripped verbatim
	ledger *Ledger
	now    func() time.Time
}

// encodeCredential derives the stored credential marker from a password.
// This is a reversible encoding kept for compatibility with existing
// account documents. It is not a security mechanism.
func encodeCredential(password string) json.RawMessage {
	encoded := base64.StdEncoding.EncodeToString([]byte(password))
	marker, _ := json.Marshal(encoded)
	return marker
}

// validUsername reports whether a username can name an account. Usernames
// become store keys, so they must be non-empty and free of path separators.
func validUsername(username string) bool {
	return username != "" && !strings.ContainsAny(username, `/\`)
}

// Setup creates a new account with an empty ledger.
// It fails with ErrInvalidCredentials on an empty or unusable username or
// password, and with ErrDuplicateAccount if the username is taken.
func Setup(store Store, username, password string) error {
	if !validUsername(username) || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidCredentials)
	}
	if store.Has(UserKey(username)) {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, username)
	}
	doc := document{
		Password: encodeCredential(password),
		Sales:    make([]Sale, 0),
		Debts:    make([]Debt, 0),
	}
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return store.Set(UserKey(username), data)
}

// Login opens a session on an existing account and records it as the
// current one. An unknown username or a non-matching password both fail
// with ErrInvalidCredentials.
func Login(store Store, username, password string) (*Session, error) {
	data, ok, err := store.Get(UserKey(username))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown user %q", ErrInvalidCredentials, username)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(doc.Password, encodeCredential(password)) {
		return nil, fmt.Errorf("%w: wrong password for %q", ErrInvalidCredentials, username)
	}
	if err := store.Set(currentUserKey, []byte(username)); err != nil {
		return nil, err
	}
	return open(store, username, doc), nil
}

// Resume reopens the session recorded as current, if any. It returns
// (nil, nil) when nobody is logged in.
func Resume(store Store) (*Session, error) {
	name, ok, err := store.Get(currentUserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	username := string(name)
	data, ok, err := store.Get(UserKey(username))
	if err != nil {
		return nil, err
	}
	if !ok {
		// The account behind the current-user marker is gone. Clear the
		// stale marker and report nobody logged in.
		log.Printf("warning, account %q behind the current-user marker is gone, clearing it", username)
		if err := store.Remove(currentUserKey); err != nil {
			return nil, err
		}
		return nil, nil
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	return open(store, username, doc), nil
}

func open(store Store, username string, doc document) *Session {
	return &Session{
		store:  store,
		user:   username,
		marker: doc.Password,
		ledger: newLedgerFrom(doc.Sales, doc.Debts),
		now:    time.Now,
	}
}

// User returns the account name this session is scoped to.
func (s *Session) User() string { return s.user }

// Ledger exposes the live in-memory ledger for reports and lookups.
// Mutations must go through the session so they persist.
func (s *Session) Ledger() *Ledger { return s.ledger }

// save writes the whole account document back to the store, with the
// credential marker exactly as it was loaded.
func (s *Session) save() error {
	doc := document{
		Password: s.marker,
		Sales:    s.ledger.sales,
		Debts:    s.ledger.debts,
	}
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return s.store.Set(UserKey(s.user), data)
}

// AddSale records a new sale and persists the ledger.
func (s *Session) AddSale(in SaleInput) (Sale, error) {
	sale := s.ledger.AddSale(in, s.now())
	if err := s.save(); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// AddDebt records a new debt and persists the ledger.
func (s *Session) AddDebt(in DebtInput) (Debt, error) {
	debt := s.ledger.AddDebt(in, s.now())
	if err := s.save(); err != nil {
		return Debt{}, err
	}
	return debt, nil
}

// DeleteSale removes a sale and persists the ledger. An absent id is a
// silent no-op, but the document is saved either way.
func (s *Session) DeleteSale(id int64) error {
	s.ledger.DeleteSale(id)
	return s.save()
}

// DeleteDebt removes a debt and persists the ledger. An absent id is a
// silent no-op, but the document is saved either way.
func (s *Session) DeleteDebt(id int64) error {
	s.ledger.DeleteDebt(id)
	return s.save()
}

// ReplaceSale is the edit flow: it deletes the old record and records the
// input as a brand new sale, with a new id, appended at the end of the
// collection. An unknown id simply records the input as a new sale; editing
// has always been a delete followed by a fresh submission.
func (s *Session) ReplaceSale(id int64, in SaleInput) (Sale, error) {
	s.ledger.DeleteSale(id)
	return s.AddSale(in)
}

// ReplaceDebt is the edit flow for debts: delete then recreate with a new id.
func (s *Session) ReplaceDebt(id int64, in DebtInput) (Debt, error) {
	s.ledger.DeleteDebt(id)
	return s.AddDebt(in)
}

// Logout clears the current-account marker and ends the session.
func (s *Session) Logout() error {
	if err := s.store.Remove(currentUserKey); err != nil {
		return err
	}
	s.user = ""
	s.ledger = NewLedger()
	return nil
}

// Export writes a backup of this session's ledger to w.
func (s *Session) Export(w io.Writer) error {
	return Export(w, s.user, s.ledger, s.now())
}

// Import reads a backup from r and replaces this session's ledger wholesale
// with its contents, then persists. The caller is expected to have obtained
// confirmation already. On any import error the live ledger is unchanged.
func (s *Session) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	ledger, err := Import(data, s.user)
	if err != nil {
		return err
	}
	old := s.ledger
	s.ledger = ledger
	if err := s.save(); err != nil {
		s.ledger = old
		return err
	}
	return nil
}
