package shopledger

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// document is the per-account record persisted in the store, exactly as the
// original books laid it out: the credential marker first, then the two
// collections.
//
// The marker is opaque to the ledger core. It is decoded as raw bytes and
// written back verbatim on every save; nothing in this package ever
// interprets it except the login comparison in session.go.
type document struct {
	Password json.RawMessage `json:"password"`
	Sales    []Sale          `json:"sales"`
	Debts    []Debt          `json:"debts"`
}

// decodeDocument parses a persisted account document. Documents written
// before the collections existed may lack sales or debts entirely; they
// decode as empty, never as an error.
func decodeDocument(data []byte) (document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("could not decode account document: %w", err)
	}
	if doc.Sales == nil {
		doc.Sales = make([]Sale, 0)
	}
	if doc.Debts == nil {
		doc.Debts = make([]Debt, 0)
	}
	return doc, nil
}

// encodeDocument serializes an account document for the store.
func encodeDocument(doc document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not encode account document: %w", err)
	}
	return data, nil
}
