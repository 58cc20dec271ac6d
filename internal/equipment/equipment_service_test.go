package equipment

import (
	"errors"
	"testing"

	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) MaxEquipmentID() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockEquipmentRepository) InsertEquipment(equipment *models.Equipment) error {
	args := m.Called(equipment)
	return args.Error(0)
}

func (m *MockEquipmentRepository) SearchEquipment(searchQuery string) ([]models.EquipmentRow, error) {
	args := m.Called(searchQuery)
	rows, _ := args.Get(0).([]models.EquipmentRow)
	return rows, args.Error(1)
}

func (m *MockEquipmentRepository) RemoveEquipment(equipmentID int) error {
	args := m.Called(equipmentID)
	return args.Error(0)
}

func TestCreateEquipmentAssignsFirstCode(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)
	service := NewEquipmentService(mockRepo)

	mockRepo.On("MaxEquipmentID").Return(0, nil).Once()
	mockRepo.On("InsertEquipment", mock.AnythingOfType("*models.Equipment")).Return(nil).Once()

	equipment := models.Equipment{Name: "رافعة شوكية"}
	err := service.CreateEquipment(&equipment)

	assert.NoError(t, err)
	assert.Equal(t, "EQ-000001", equipment.Code)
	assert.Equal(t, string(metadata.StatusReady), equipment.Status)
	mockRepo.AssertExpectations(t)
}

func TestCreateEquipmentSkipsGapsAfterDeletion(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)
	service := NewEquipmentService(mockRepo)

	// Max row id is 7 even though rows were deleted; the next code is
	// EQ-000008 and gaps are never reused.
	mockRepo.On("MaxEquipmentID").Return(7, nil).Once()
	mockRepo.On("InsertEquipment", mock.AnythingOfType("*models.Equipment")).Return(nil).Once()

	equipment := models.Equipment{Name: "مولد كهربائي", Status: string(metadata.StatusMaintenance)}
	err := service.CreateEquipment(&equipment)

	assert.NoError(t, err)
	assert.Equal(t, "EQ-000008", equipment.Code)
	assert.Equal(t, string(metadata.StatusMaintenance), equipment.Status)
	mockRepo.AssertExpectations(t)
}

func TestCreateEquipmentSurfacesInsertConflict(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)
	service := NewEquipmentService(mockRepo)

	mockRepo.On("MaxEquipmentID").Return(3, nil).Once()
	mockRepo.On("InsertEquipment", mock.AnythingOfType("*models.Equipment")).
		Return(errors.New("duplicate equipment code")).Once()

	err := service.CreateEquipment(&models.Equipment{Name: "ضاغط هواء"})

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateEquipmentFailsWhenMaxIDUnavailable(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)
	service := NewEquipmentService(mockRepo)

	mockRepo.On("MaxEquipmentID").Return(0, errors.New("connection lost")).Once()

	err := service.CreateEquipment(&models.Equipment{Name: "مثقاب"})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "InsertEquipment", mock.Anything)
}
