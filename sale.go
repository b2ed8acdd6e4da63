package shopledger

import "fmt"

// PaymentMethod defines how a sale was paid.
type PaymentMethod int

const (
	// Cash is a payment in physical cash.
	Cash PaymentMethod = iota
	// Credit is a sale on store credit.
	Credit
	// Mobile is a mobile-money payment.
	Mobile
	// Card is a bank-card payment.
	Card
)

func (m PaymentMethod) String() string {
	switch m {
	case Cash:
		return "cash"
	case Credit:
		return "credit"
	case Mobile:
		return "mobile"
	case Card:
		return "card"
	default:
		return "unknown"
	}
}

// Label returns the human form used in rendered tables.
func (m PaymentMethod) Label() string {
	switch m {
	case Cash:
		return "Cash"
	case Credit:
		return "Credit"
	case Mobile:
		return "Mobile"
	case Card:
		return "Card"
	default:
		return m.String()
	}
}

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "credit":
		return Credit, nil
	case "mobile":
		return Mobile, nil
	case "card":
		return Card, nil
	default:
		return 0, fmt.Errorf("unknown payment method: %q", s)
	}
}

func (m PaymentMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *PaymentMethod) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sale is one sales transaction, as recorded at the till.
//
// Total is always Quantity times Price; it is recomputed at creation and
// never kept independently of that relation. The json tags are the ledger
// document's historical field names and must not change.
type Sale struct {
	ID            int64         `json:"id"`
	CustomerName  string        `json:"customerName"`
	Product       string        `json:"product"`
	Quantity      int64         `json:"quantity"`
	Price         Money         `json:"price"`
	Total         Money         `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	SaleDate      Date          `json:"saleDate"`
}

// SaleInput carries the caller-provided fields of a new sale. The engine
// assigns the id and computes the total; it does not re-validate what the
// front end already parsed.
type SaleInput struct {
	CustomerName  string
	Product       string
	Quantity      int64
	Price         Money
	PaymentMethod PaymentMethod
	SaleDate      Date
}
