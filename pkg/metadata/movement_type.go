package metadata

// MovementType is the vocabulary of custody/location changes. Values are
// stored verbatim.
type MovementType string

const (
	TypeIssue    MovementType = "صرف"
	TypeDelivery MovementType = "تسليم"
	TypeReceipt  MovementType = "استلام"
	TypeTransfer MovementType = "نقل"
	TypeRental   MovementType = "تأجير"
	TypeReturn   MovementType = "إرجاع"
)

func AllMovementTypes() []MovementType {
	return []MovementType{TypeIssue, TypeDelivery, TypeReceipt, TypeTransfer, TypeRental, TypeReturn}
}

// IsMovementType reports whether value is part of the movement vocabulary.
func IsMovementType(value string) bool {
	switch MovementType(value) {
	case TypeIssue, TypeDelivery, TypeReceipt, TypeTransfer, TypeRental, TypeReturn:
		return true
	default:
		return false
	}
}

// StatusAfterMovement returns the equipment status a movement of the given
// type forces, if any. Transfer and unrecognized types match no rule and
// leave the status unchanged (ok=false).
func StatusAfterMovement(movementType string) (Status, bool) {
	switch MovementType(movementType) {
	case TypeIssue, TypeDelivery:
		return StatusInOperation, true
	case TypeRental:
		return StatusRented, true
	case TypeReceipt, TypeReturn:
		return StatusReady, true
	default:
		return "", false
	}
}
