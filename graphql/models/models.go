package models

type Product struct {
	ID          int32    `json:"id" mapstructure:"entity_id"`
	UID         string   `json:"uid" mapstructure:"-"`
	SKU         string   `json:"sku" mapstructure:"sku"`
	Name        *string  `json:"name,omitempty" mapstructure:"name"`
	URLKey      *string  `json:"url_key,omitempty" mapstructure:"url_key"`
	TypeID      *string  `json:"type_id,omitempty" mapstructure:"type_id"`
	StockStatus *string  `json:"stock_status,omitempty" mapstructure:"-"`
	Qty         *float64 `json:"qty,omitempty" mapstructure:"qty"`
}

type SearchResultPageInfo struct {
	CurrentPage int32 `json:"current_page"`
	PageSize    int32 `json:"page_size"`
	TotalPages  int32 `json:"total_pages"`
}

type Products struct {
	Items      []*Product            `json:"items"`
	TotalCount int32                 `json:"total_count"`
	PageInfo   *SearchResultPageInfo `json:"page_info"`
}
