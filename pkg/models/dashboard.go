package models

type DashboardCounts struct {
	TotalEquipment int64 `json:"total_equipment"`
	Ready          int64 `json:"ready"`
	InOperation    int64 `json:"in_operation"`
	Maintenance    int64 `json:"maintenance"`
	Damaged        int64 `json:"damaged"`
	Rented         int64 `json:"rented"`
	Warehouses     int64 `json:"warehouses"`
	Shelves        int64 `json:"shelves"`
}
