package metadata

import "fmt"

// Status is the closed vocabulary of equipment states. The Arabic values
// are stored verbatim in the database and rendered as-is in the UI.
type Status string

const (
	StatusReady       Status = "جاهزة"
	StatusInOperation Status = "قيد التشغيل"
	StatusMaintenance Status = "تحت الصيانة"
	StatusDamaged     Status = "تالفة"
	StatusRented      Status = "مؤجرة"
)

func NewStatus(value string) (Status, error) {
	status := Status(value)
	if !status.isValid() {
		return "", fmt.Errorf("invalid status: %s", value)
	}
	return status, nil
}

func (s Status) isValid() bool {
	switch s {
	case StatusReady, StatusInOperation, StatusMaintenance, StatusDamaged, StatusRented:
		return true
	default:
		return false
	}
}

func AllStatuses() []Status {
	return []Status{StatusReady, StatusInOperation, StatusMaintenance, StatusDamaged, StatusRented}
}
