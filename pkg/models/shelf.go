package models

type Shelf struct {
	ID          int     `json:"id" db:"id"`
	WarehouseID int     `json:"warehouse_id" db:"warehouse_id"`
	Code        string  `json:"code" db:"code"`
	Description *string `json:"description" db:"description"`
}

// ShelfRow is the list-view projection with the owning warehouse joined in.
type ShelfRow struct {
	ID            int     `json:"id" db:"id"`
	WarehouseID   int     `json:"warehouse_id" db:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name" db:"warehouse_name"`
	Code          string  `json:"code" db:"code"`
	Description   *string `json:"description" db:"description"`
}
