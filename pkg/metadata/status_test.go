package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		status, err := NewStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, status)
	}

	_, err := NewStatus("broken")
	assert.Error(t, err)

	_, err = NewStatus("")
	assert.Error(t, err)
}
