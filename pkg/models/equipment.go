package models

import "time"

type Equipment struct {
	ID           int       `json:"id" db:"id"`
	Code         string    `json:"code" db:"code"`
	Name         string    `json:"name" db:"name"`
	Category     *string   `json:"category" db:"category"`
	SerialNumber *string   `json:"serial_number" db:"serial_number"`
	AssetNumber  *string   `json:"asset_number" db:"asset_number"`
	Status       string    `json:"status" db:"status"`
	ShelfID      *int      `json:"shelf_id" db:"shelf_id"`
	Notes        *string   `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// EquipmentRow is the list-view projection with the shelf code joined in.
type EquipmentRow struct {
	ID           int       `json:"id" db:"id"`
	Code         string    `json:"code" db:"code"`
	Name         string    `json:"name" db:"name"`
	Category     *string   `json:"category" db:"category"`
	SerialNumber *string   `json:"serial_number" db:"serial_number"`
	AssetNumber  *string   `json:"asset_number" db:"asset_number"`
	Status       string    `json:"status" db:"status"`
	ShelfID      *int      `json:"shelf_id" db:"shelf_id"`
	ShelfCode    *string   `json:"shelf_code" db:"shelf_code"`
	Notes        *string   `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
