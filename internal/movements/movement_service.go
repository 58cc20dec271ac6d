package movements

import (
	"strings"

	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"go.uber.org/zap"
)

// MovementService records a movement and applies the status-transition
// rules to the referenced equipment: issue/delivery force in-operation,
// rental forces rented, receipt/return force ready, transfer and
// unrecognized types leave the status alone. Shelf assignment is
// independent of the status rule and only happens when the destination
// code matches an existing shelf.
type MovementService struct {
	repo MovementRepository
	log  *zap.Logger
}

func NewMovementService(repo MovementRepository, log *zap.Logger) *MovementService {
	return &MovementService{
		repo: repo,
		log:  log,
	}
}

func (s *MovementService) RecordMovement(movement *models.Movement) error {
	var newStatus *metadata.Status
	if status, ok := metadata.StatusAfterMovement(movement.Type); ok {
		newStatus = &status
	} else if !metadata.IsMovementType(movement.Type) {
		s.log.Warn("Movement type outside the vocabulary, equipment status left unchanged",
			zap.String("type", movement.Type))
	}

	shelfID, err := s.resolveDestinationShelf(movement.ToShelf)
	if err != nil {
		return err
	}

	return s.repo.RecordMovement(movement, newStatus, shelfID)
}

func (s *MovementService) resolveDestinationShelf(toShelf *string) (*int, error) {
	if toShelf == nil || *toShelf == "" {
		return nil, nil
	}

	code := strings.ToUpper(*toShelf)
	shelf, err := s.repo.FindShelfByCode(code)
	if err != nil {
		return nil, err
	}
	if shelf == nil {
		s.log.Warn("Destination shelf code matches no shelf, reference left unchanged",
			zap.String("code", code))
		return nil, nil
	}

	return &shelf.ID, nil
}
