package domain

// Employee is a catalog record for a member of staff that uniforms are
// issued to. Badge is optional but globally unique when present.
type Employee struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Badge string `json:"badge,omitempty"`
}

// Item is one uniform variant. The (Name, Size, Category) triple is the
// identity key; re-registering the same triple only updates MinStock.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Category string `json:"category"`
	MinStock int    `json:"min_stock"`
}

// StockLevel caches the current on-hand quantity for an item. It is
// derived state: it must always equal the sum of the item's movements.
type StockLevel struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}
