package shopledger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the backup import/export format: one pretty-printed
// JSON document carrying the owning account and both collections. It should
// remain human readable and safe to hand from one machine to another.

// backupDocument is the portable snapshot of one account's ledger.
type backupDocument struct {
	User       string    `json:"user"`
	Sales      []Sale    `json:"sales"`
	Debts      []Debt    `json:"debts"`
	BackupDate time.Time `json:"backupDate"`
}

// BackupFilename returns the conventional name for a backup taken on the
// given date, e.g. "sales-backup-2024-01-05.json".
func BackupFilename(on Date) string {
	return "sales-backup-" + on.String() + ".json"
}

// Export writes a snapshot of the account's ledger to w in the backup
// format. The live ledger is not modified.
func Export(w io.Writer, user string, l *Ledger, now time.Time) error {
	doc := backupDocument{
		User:       user,
		Sales:      l.sales,
		Debts:      l.debts,
		BackupDate: now.UTC(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write backup: %w", err)
	}
	return nil
}

// Import parses a backup document and returns the replacement ledger it
// carries. It never merges: the returned ledger is a wholesale snapshot.
//
// The document must belong to activeUser. Input that does not parse as JSON
// fails with ErrCorruptFile; a document owned by another account fails with
// ErrForeignAccountData; a document missing or mangling its sales or debts
// fails with ErrInvalidDocument. On any error no ledger is returned, so the
// caller's live ledger stays untouched.
func Import(data []byte, activeUser string) (*Ledger, error) {
	// First a tolerant pass: probe the untrusted document's shape before
	// committing to the strict decode.
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	if owner, err := jsonpath.Get("$.user", probe); err == nil {
		if name, ok := owner.(string); ok && name != activeUser {
			return nil, fmt.Errorf("%w: %q", ErrForeignAccountData, name)
		}
	} else {
		return nil, fmt.Errorf("%w: missing user", ErrInvalidDocument)
	}
	if _, err := jsonpath.Get("$.sales", probe); err != nil {
		return nil, fmt.Errorf("%w: missing sales", ErrInvalidDocument)
	}
	if _, err := jsonpath.Get("$.debts", probe); err != nil {
		return nil, fmt.Errorf("%w: missing debts", ErrInvalidDocument)
	}

	var doc backupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.User != activeUser {
		// The probe let a non-string owner through.
		return nil, fmt.Errorf("%w: missing user", ErrInvalidDocument)
	}
	return newLedgerFrom(doc.Sales, doc.Debts), nil
}
