package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEquipmentCode(t *testing.T) {
	tests := []struct {
		name     string
		sequence int
		expected string
	}{
		{
			name:     "First Code",
			sequence: 1,
			expected: "EQ-000001",
		},
		{
			name:     "Padded Mid Range",
			sequence: 42,
			expected: "EQ-000042",
		},
		{
			name:     "Six Digits",
			sequence: 123456,
			expected: "EQ-123456",
		},
		{
			name:     "Beyond Padding Width",
			sequence: 1234567,
			expected: "EQ-1234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEquipmentCode(tt.sequence))
		})
	}
}
