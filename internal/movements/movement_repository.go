package movements

import (
	"fmt"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type MovementRepository interface {
	FindShelfByCode(code string) (*models.Shelf, error)
	RecordMovement(movement *models.Movement, newStatus *metadata.Status, shelfID *int) error
	GetRecentMovements(limit int) ([]models.MovementRow, error)
}

type movementRepositoryImpl struct {
	repository *repository.Repository
}

func NewMovementRepository(r *repository.Repository) MovementRepository {
	return &movementRepositoryImpl{repository: r}
}

// FindShelfByCode resolves a destination-shelf code. Shelf codes are not
// unique in the schema; the lowest id wins so duplicates at least resolve
// deterministically. Returns nil when nothing matches.
func (r *movementRepositoryImpl) FindShelfByCode(code string) (*models.Shelf, error) {
	var shelf models.Shelf
	query := r.repository.GoquDBWrapper.
		Select("id", "warehouse_id", "code", "description").
		From("shelves").
		Where(goqu.Ex{"code": code}).
		Order(goqu.I("id").Asc()).
		Limit(1)

	found, err := query.Executor().ScanStruct(&shelf)
	if err != nil {
		return nil, fmt.Errorf("failed to look up shelf by code: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &shelf, nil
}

// RecordMovement inserts the movement row and applies the computed status
// and shelf changes to the equipment row in one transaction. Both writes
// commit or roll back together.
func (r *movementRepositoryImpl) RecordMovement(movement *models.Movement, newStatus *metadata.Status, shelfID *int) error {
	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		insert := tx.Insert("movements").
			Rows(goqu.Record{
				"equipment_id": movement.EquipmentID,
				"type":         movement.Type,
				"to_person":    movement.ToPerson,
				"project":      movement.Project,
				"from_shelf":   movement.FromShelf,
				"to_shelf":     movement.ToShelf,
				"notes":        movement.Notes,
			}).
			Returning("id")

		if _, err := insert.Executor().ScanVal(&movement.ID); err != nil {
			return fmt.Errorf("failed to insert movement record: %w", err)
		}

		updates := goqu.Record{}
		if newStatus != nil {
			updates["status"] = string(*newStatus)
		}
		if shelfID != nil {
			updates["shelf_id"] = *shelfID
		}
		if len(updates) == 0 {
			return nil
		}

		if _, err := tx.Update("equipment").
			Set(updates).
			Where(goqu.Ex{"id": movement.EquipmentID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to update equipment state: %w", err)
		}

		return nil
	})
}

func (r *movementRepositoryImpl) GetRecentMovements(limit int) ([]models.MovementRow, error) {
	var rows []models.MovementRow
	query := r.repository.GoquDBWrapper.
		From(goqu.T("movements").As("m")).
		Join(
			goqu.T("equipment").As("e"),
			goqu.On(goqu.Ex{"m.equipment_id": goqu.I("e.id")}),
		).
		Select(
			goqu.I("m.id").As("id"),
			goqu.I("m.equipment_id").As("equipment_id"),
			goqu.I("e.code").As("equipment_code"),
			goqu.I("e.name").As("equipment_name"),
			goqu.I("m.type").As("type"),
			goqu.I("m.to_person").As("to_person"),
			goqu.I("m.project").As("project"),
			goqu.I("m.from_shelf").As("from_shelf"),
			goqu.I("m.to_shelf").As("to_shelf"),
			goqu.I("m.notes").As("notes"),
			goqu.I("m.created_at").As("created_at"),
		).
		Order(goqu.I("m.id").Desc()).
		Limit(uint(limit))

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return rows, nil
}
