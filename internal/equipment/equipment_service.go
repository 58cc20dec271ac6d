package equipment

import (
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
)

type EquipmentService struct {
	repo EquipmentRepository
}

func NewEquipmentService(repo EquipmentRepository) *EquipmentService {
	return &EquipmentService{repo: repo}
}

// CreateEquipment assigns the next EQ code from max(id)+1 and inserts the
// row. The read and insert are not serialized against concurrent
// creations; a lost race surfaces as a UniqueViolationError from the
// repository, never as a silent failure.
func (s *EquipmentService) CreateEquipment(equipment *models.Equipment) error {
	maxID, err := s.repo.MaxEquipmentID()
	if err != nil {
		return err
	}

	equipment.Code = metadata.FormatEquipmentCode(maxID + 1)
	if equipment.Status == "" {
		equipment.Status = string(metadata.StatusReady)
	}

	return s.repo.InsertEquipment(equipment)
}
