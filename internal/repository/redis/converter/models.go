package converter

import "github.com/shopspring/decimal"

// SessionRedisModel — JSON-представление сессии в Redis.
type SessionRedisModel struct {
	Cart  []LineItemRedisModel `json:"cart"`
	Draft *DraftRedisModel     `json:"draft,omitempty"`
}

type LineItemRedisModel struct {
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ProductID int64           `json:"product_id,omitempty"`
}

type DraftRedisModel struct {
	Components  []ComponentRedisModel `json:"components"`
	TotalPrice  decimal.Decimal       `json:"total_price"`
	DisplayName string                `json:"name"`
}

type ComponentRedisModel struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
