package domain

import "time"

// StatusRow is one line of the stock-status report: an item joined with
// its current quantity and the low-stock flag.
type StatusRow struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
	Below    bool `json:"below_threshold"`
}

// HistoryRow is a movement enriched with human-readable labels for
// display. TypeLabel and Employee are presentation decoration, not
// stored data; Employee is empty when no employee is attached.
type HistoryRow struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"name"`
	Size      string    `json:"size"`
	Category  string    `json:"category"`
	Employee  string    `json:"employee"`
	Kind      Kind      `json:"type"`
	TypeLabel string    `json:"type_label"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// LowStockAlert is the event published when a committed movement leaves
// an item below its minimum-stock threshold.
type LowStockAlert struct {
	EventID  string    `json:"event_id"`
	ItemID   int64     `json:"item_id"`
	Name     string    `json:"name"`
	Size     string    `json:"size"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	MinStock int       `json:"min_stock"`
	At       time.Time `json:"at"`
}
