package equipment

import (
	"fmt"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	custom_error "github.com/3zshihri-ux/warehouse-management-system1/pkg/errors"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type EquipmentRepository interface {
	MaxEquipmentID() (int, error)
	InsertEquipment(equipment *models.Equipment) error
	SearchEquipment(searchQuery string) ([]models.EquipmentRow, error)
	RemoveEquipment(equipmentID int) error
}

type equipmentRepositoryImpl struct {
	repository *repository.Repository
}

func NewEquipmentRepository(r *repository.Repository) EquipmentRepository {
	return &equipmentRepositoryImpl{repository: r}
}

// MaxEquipmentID returns the highest equipment row id ever assigned, 0 on
// an empty table. Hard deletes leave gaps that are never reused.
func (r *equipmentRepositoryImpl) MaxEquipmentID() (int, error) {
	var maxID int
	query := r.repository.GoquDBWrapper.
		From("equipment").
		Select(goqu.COALESCE(goqu.MAX("id"), 0))

	if _, err := query.Executor().ScanVal(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max equipment id: %w", err)
	}

	return maxID, nil
}

func (r *equipmentRepositoryImpl) InsertEquipment(equipment *models.Equipment) error {
	query := r.repository.GoquDBWrapper.Insert("equipment").
		Rows(goqu.Record{
			"code":          equipment.Code,
			"name":          equipment.Name,
			"category":      equipment.Category,
			"serial_number": equipment.SerialNumber,
			"asset_number":  equipment.AssetNumber,
			"status":        equipment.Status,
			"shelf_id":      equipment.ShelfID,
			"notes":         equipment.Notes,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&equipment.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			// Two concurrent creations can race to the same max id; the
			// unique constraint on code turns that into a conflict here.
			return custom_error.WrapDBError("Duplicate equipment code "+equipment.Code, string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert equipment record: %w", err)
	}

	return nil
}

func (r *equipmentRepositoryImpl) SearchEquipment(searchQuery string) ([]models.EquipmentRow, error) {
	query := r.repository.GoquDBWrapper.
		From(goqu.T("equipment").As("e")).
		LeftJoin(
			goqu.T("shelves").As("s"),
			goqu.On(goqu.Ex{"e.shelf_id": goqu.I("s.id")}),
		).
		Select(
			goqu.I("e.id").As("id"),
			goqu.I("e.code").As("code"),
			goqu.I("e.name").As("name"),
			goqu.I("e.category").As("category"),
			goqu.I("e.serial_number").As("serial_number"),
			goqu.I("e.asset_number").As("asset_number"),
			goqu.I("e.status").As("status"),
			goqu.I("e.shelf_id").As("shelf_id"),
			goqu.I("s.code").As("shelf_code"),
			goqu.I("e.notes").As("notes"),
			goqu.I("e.created_at").As("created_at"),
		).
		Order(goqu.I("e.id").Desc())

	if searchQuery != "" {
		like := "%" + searchQuery + "%"
		query = query.Where(goqu.Or(
			goqu.I("e.name").ILike(like),
			goqu.I("e.code").ILike(like),
			goqu.I("e.serial_number").ILike(like),
		))
	}

	var rows []models.EquipmentRow
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return rows, nil
}

// RemoveEquipment deletes the equipment row together with its movement
// history. Missing id is a no-op.
func (r *equipmentRepositoryImpl) RemoveEquipment(equipmentID int) error {
	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("movements").
			Where(goqu.Ex{"equipment_id": equipmentID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to delete equipment movements: %w", err)
		}

		if _, err := tx.Delete("equipment").
			Where(goqu.Ex{"id": equipmentID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to delete equipment: %w", err)
		}

		return nil
	})
}
