package domain

import "time"

// Kind classifies a stock movement.
type Kind string

const (
	KindStockIn Kind = "stock_in"
	KindIssue   Kind = "issue"
	KindReturn  Kind = "return"
	KindAdjust  Kind = "adjust"
)

var kindLabels = map[Kind]string{
	KindStockIn: "stock in",
	KindIssue:   "issue",
	KindReturn:  "return",
	KindAdjust:  "adjust",
}

// Valid reports whether k is one of the four known movement kinds.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// Label returns the human-readable name for the kind. Unknown kinds
// fall back to the raw value.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// SignedQuantity applies the ledger sign convention to a requested
// amount: issues are stored negative, stock-ins and returns positive,
// regardless of the caller-supplied sign. Adjustments keep the caller's
// sign as-is.
func SignedQuantity(k Kind, requested int) int {
	abs := requested
	if abs < 0 {
		abs = -abs
	}
	switch k {
	case KindIssue:
		return -abs
	case KindStockIn, KindReturn:
		return abs
	default:
		return requested
	}
}

// Movement is one immutable ledger entry: a signed quantity change
// recorded against an item. EmployeeID is set for issues and returns
// and nil otherwise. Movements are append-only; there is no update or
// delete anywhere in this module.
type Movement struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	EmployeeID *int64    `json:"employee_id,omitempty"`
	Kind       Kind      `json:"type"`
	Quantity   int       `json:"quantity"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}
