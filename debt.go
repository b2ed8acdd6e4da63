package shopledger

import "fmt"

// DebtStatus defines the state of a customer debt.
type DebtStatus int

const (
	// Pending is a debt not yet repaid.
	Pending DebtStatus = iota
	// Paid is a settled debt. It no longer counts as outstanding.
	Paid
	// Overdue is a debt past its due date and still unpaid.
	Overdue
)

func (s DebtStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Paid:
		return "paid"
	case Overdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// Label returns the human form used in rendered tables.
func (s DebtStatus) Label() string {
	switch s {
	case Pending:
		return "Pending"
	case Paid:
		return "Paid"
	case Overdue:
		return "Overdue"
	default:
		return s.String()
	}
}

// Outstanding reports whether a debt in this status still counts toward the
// outstanding-debt total. Only paid debts do not.
func (s DebtStatus) Outstanding() bool { return s == Pending || s == Overdue }

// ParseDebtStatus parses a string into a DebtStatus.
func ParseDebtStatus(s string) (DebtStatus, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "paid":
		return Paid, nil
	case "overdue":
		return Overdue, nil
	default:
		return 0, fmt.Errorf("unknown debt status: %q", s)
	}
}

func (s DebtStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *DebtStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseDebtStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Debt is one outstanding customer debt. The json tags are the ledger
// document's historical field names and must not change.
type Debt struct {
	ID       int64      `json:"id"`
	Customer string     `json:"customer"`
	Amount   Money      `json:"amount"`
	Reason   string     `json:"reason"`
	DueDate  Date       `json:"dueDate"`
	Status   DebtStatus `json:"status"`
}

// DebtInput carries the caller-provided fields of a new debt. The engine
// assigns the id.
type DebtInput struct {
	Customer string
	Amount   Money
	Reason   string
	DueDate  Date
	Status   DebtStatus
}
