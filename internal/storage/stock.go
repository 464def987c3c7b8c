package storage

type StockItem struct {
	ID       int64   `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Color    *string `json:"color"`
	Size     *string `json:"size"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit"`
	Location *string `json:"location"`
	IsActive bool    `json:"is_active"`
}
