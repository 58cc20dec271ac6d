package models

type Warehouse struct {
	ID       int     `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Code     string  `json:"code" db:"code"`
	Location *string `json:"location" db:"location"`
}
