package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAfterMovement(t *testing.T) {
	tests := []struct {
		name         string
		movementType string
		expected     Status
		matched      bool
	}{
		{
			name:         "Issue Sets In Operation",
			movementType: "صرف",
			expected:     StatusInOperation,
			matched:      true,
		},
		{
			name:         "Delivery Sets In Operation",
			movementType: "تسليم",
			expected:     StatusInOperation,
			matched:      true,
		},
		{
			name:         "Rental Sets Rented",
			movementType: "تأجير",
			expected:     StatusRented,
			matched:      true,
		},
		{
			name:         "Receipt Sets Ready",
			movementType: "استلام",
			expected:     StatusReady,
			matched:      true,
		},
		{
			name:         "Return Sets Ready",
			movementType: "إرجاع",
			expected:     StatusReady,
			matched:      true,
		},
		{
			name:         "Transfer Matches No Rule",
			movementType: "نقل",
			matched:      false,
		},
		{
			name:         "Unknown Type Matches No Rule",
			movementType: "typo",
			matched:      false,
		},
		{
			name:         "Empty Type Matches No Rule",
			movementType: "",
			matched:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := StatusAfterMovement(tt.movementType)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.expected, status)
		})
	}
}
