package shopledger

import (
	"bytes"
	"testing"
)

func TestDecodeDocument_DefaultsMissingCollections(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "no collections at all", input: `{"password":"cGFzcw=="}`},
		{name: "null collections", input: `{"password":"cGFzcw==","sales":null,"debts":null}`},
		{name: "only sales", input: `{"password":"cGFzcw==","sales":[]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := decodeDocument([]byte(tc.input))
			if err != nil {
				t.Fatalf("decodeDocument: %v", err)
			}
			if doc.Sales == nil || doc.Debts == nil {
				t.Errorf("collections not defaulted: sales=%v debts=%v", doc.Sales, doc.Debts)
			}
			if len(doc.Sales) != 0 || len(doc.Debts) != 0 {
				t.Errorf("defaulted collections not empty: %+v", doc)
			}
		})
	}
}

func TestDecodeDocument_Records(t *testing.T) {
	input := `{
		"password": "cGFzcw==",
		"sales": [{"id": 1704450600000, "customerName": "Ann", "product": "Widget",
		           "quantity": 3, "price": 10, "total": 30,
		           "paymentMethod": "cash", "saleDate": "2024-01-05"}],
		"debts": [{"id": 1704450600001, "customer": "Bob", "amount": 12.5,
		           "reason": "groceries", "dueDate": "2024-02-01", "status": "overdue"}]
	}`
	doc, err := decodeDocument([]byte(input))
	if err != nil {
		t.Fatalf("decodeDocument: %v", err)
	}

	sale := doc.Sales[0]
	if sale.CustomerName != "Ann" || sale.Quantity != 3 || sale.PaymentMethod != Cash {
		t.Errorf("sale decoded as %+v", sale)
	}
	if !sale.Total.Equal(USD(30)) || !sale.Price.Equal(USD(10)) {
		t.Errorf("sale amounts decoded as price=%v total=%v", sale.Price, sale.Total)
	}
	if sale.SaleDate != MustParseDate("2024-01-05") {
		t.Errorf("sale date decoded as %v", sale.SaleDate)
	}

	debt := doc.Debts[0]
	if debt.Customer != "Bob" || debt.Status != Overdue || !debt.Amount.Equal(USD(12.5)) {
		t.Errorf("debt decoded as %+v", debt)
	}
}

func TestDocument_MarkerRoundTripsVerbatim(t *testing.T) {
	// The credential marker is opaque: whatever bytes are in the document
	// must come back out unchanged, even if they are not a string.
	markers := []string{
		`"cGFzcw=="`,
		`"not even base64"`,
		`{"scheme":"v2","hash":"abc"}`,
		`null`,
	}
	for _, marker := range markers {
		input := `{"password":` + marker + `,"sales":[],"debts":[]}`
		doc, err := decodeDocument([]byte(input))
		if err != nil {
			t.Fatalf("decodeDocument(%s): %v", marker, err)
		}
		data, err := encodeDocument(doc)
		if err != nil {
			t.Fatalf("encodeDocument(%s): %v", marker, err)
		}
		if !bytes.Contains(data, []byte(`"password":`+marker)) {
			t.Errorf("marker %s not preserved verbatim in %s", marker, data)
		}
	}
}
