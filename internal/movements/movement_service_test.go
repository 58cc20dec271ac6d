package movements

import (
	"errors"
	"testing"

	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindShelfByCode(code string) (*models.Shelf, error) {
	args := m.Called(code)
	shelf, _ := args.Get(0).(*models.Shelf)
	return shelf, args.Error(1)
}

func (m *MockMovementRepository) RecordMovement(movement *models.Movement, newStatus *metadata.Status, shelfID *int) error {
	args := m.Called(movement, newStatus, shelfID)
	return args.Error(0)
}

func (m *MockMovementRepository) GetRecentMovements(limit int) ([]models.MovementRow, error) {
	args := m.Called(limit)
	rows, _ := args.Get(0).([]models.MovementRow)
	return rows, args.Error(1)
}

func statusIs(expected metadata.Status) interface{} {
	return mock.MatchedBy(func(status *metadata.Status) bool {
		return status != nil && *status == expected
	})
}

func noStatus() interface{} {
	return mock.MatchedBy(func(status *metadata.Status) bool {
		return status == nil
	})
}

func noShelf() interface{} {
	return mock.MatchedBy(func(shelfID *int) bool {
		return shelfID == nil
	})
}

func shelfIs(expected int) interface{} {
	return mock.MatchedBy(func(shelfID *int) bool {
		return shelfID != nil && *shelfID == expected
	})
}

func TestRecordMovementStatusRules(t *testing.T) {
	tests := []struct {
		name         string
		movementType string
		expected     interface{}
	}{
		{
			name:         "Issue Forces In Operation",
			movementType: string(metadata.TypeIssue),
			expected:     statusIs(metadata.StatusInOperation),
		},
		{
			name:         "Delivery Forces In Operation",
			movementType: string(metadata.TypeDelivery),
			expected:     statusIs(metadata.StatusInOperation),
		},
		{
			name:         "Rental Forces Rented",
			movementType: string(metadata.TypeRental),
			expected:     statusIs(metadata.StatusRented),
		},
		{
			name:         "Receipt Forces Ready",
			movementType: string(metadata.TypeReceipt),
			expected:     statusIs(metadata.StatusReady),
		},
		{
			name:         "Return Forces Ready",
			movementType: string(metadata.TypeReturn),
			expected:     statusIs(metadata.StatusReady),
		},
		{
			name:         "Transfer Leaves Status Unchanged",
			movementType: string(metadata.TypeTransfer),
			expected:     noStatus(),
		},
		{
			name:         "Unknown Type Leaves Status Unchanged",
			movementType: "typo",
			expected:     noStatus(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMovementRepository)
			service := NewMovementService(mockRepo, zap.NewNop())

			mockRepo.On("RecordMovement", mock.AnythingOfType("*models.Movement"), tt.expected, noShelf()).
				Return(nil).Once()

			err := service.RecordMovement(&models.Movement{EquipmentID: 1, Type: tt.movementType})

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecordMovementAssignsMatchedShelf(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	service := NewMovementService(mockRepo, zap.NewNop())

	toShelf := "wh1-r01-s01"
	mockRepo.On("FindShelfByCode", "WH1-R01-S01").
		Return(&models.Shelf{ID: 5, WarehouseID: 1, Code: "WH1-R01-S01"}, nil).Once()
	mockRepo.On("RecordMovement", mock.AnythingOfType("*models.Movement"), statusIs(metadata.StatusReady), shelfIs(5)).
		Return(nil).Once()

	err := service.RecordMovement(&models.Movement{
		EquipmentID: 1,
		Type:        string(metadata.TypeReceipt),
		ToShelf:     &toShelf,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordMovementIgnoresUnmatchedShelfCode(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	service := NewMovementService(mockRepo, zap.NewNop())

	toShelf := "NO-SUCH-SHELF"
	mockRepo.On("FindShelfByCode", "NO-SUCH-SHELF").Return(nil, nil).Once()
	mockRepo.On("RecordMovement", mock.AnythingOfType("*models.Movement"), statusIs(metadata.StatusRented), noShelf()).
		Return(nil).Once()

	err := service.RecordMovement(&models.Movement{
		EquipmentID: 1,
		Type:        string(metadata.TypeRental),
		ToShelf:     &toShelf,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordMovementSkipsShelfLookupForEmptyCode(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	service := NewMovementService(mockRepo, zap.NewNop())

	mockRepo.On("RecordMovement", mock.AnythingOfType("*models.Movement"), statusIs(metadata.StatusRented), noShelf()).
		Return(nil).Once()

	err := service.RecordMovement(&models.Movement{
		EquipmentID: 1,
		Type:        string(metadata.TypeRental),
	})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "FindShelfByCode", mock.Anything)
}

func TestRecordMovementPropagatesShelfLookupError(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	service := NewMovementService(mockRepo, zap.NewNop())

	toShelf := "WH1-R01-S01"
	mockRepo.On("FindShelfByCode", "WH1-R01-S01").
		Return(nil, errors.New("connection lost")).Once()

	err := service.RecordMovement(&models.Movement{
		EquipmentID: 1,
		Type:        string(metadata.TypeTransfer),
		ToShelf:     &toShelf,
	})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "RecordMovement", mock.Anything, mock.Anything, mock.Anything)
}
