package models

import "time"

// Movement is an append-only custody/location record. Rows are never
// updated or deleted except when the owning equipment row is removed.
type Movement struct {
	ID          int       `json:"id" db:"id"`
	EquipmentID int       `json:"equipment_id" db:"equipment_id"`
	Type        string    `json:"type" db:"type"`
	ToPerson    *string   `json:"to_person" db:"to_person"`
	Project     *string   `json:"project" db:"project"`
	FromShelf   *string   `json:"from_shelf" db:"from_shelf"`
	ToShelf     *string   `json:"to_shelf" db:"to_shelf"`
	Notes       *string   `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MovementRow is the list-view projection with the equipment joined in.
type MovementRow struct {
	ID            int       `json:"id" db:"id"`
	EquipmentID   int       `json:"equipment_id" db:"equipment_id"`
	EquipmentCode string    `json:"equipment_code" db:"equipment_code"`
	EquipmentName string    `json:"equipment_name" db:"equipment_name"`
	Type          string    `json:"type" db:"type"`
	ToPerson      *string   `json:"to_person" db:"to_person"`
	Project       *string   `json:"project" db:"project"`
	FromShelf     *string   `json:"from_shelf" db:"from_shelf"`
	ToShelf       *string   `json:"to_shelf" db:"to_shelf"`
	Notes         *string   `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
