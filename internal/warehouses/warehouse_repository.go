package warehouses

import (
	"fmt"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	custom_error "github.com/3zshihri-ux/warehouse-management-system1/pkg/errors"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type WarehouseRepository struct {
	Repository *repository.Repository
}

func NewWarehouseRepository(r *repository.Repository) *WarehouseRepository {
	return &WarehouseRepository{Repository: r}
}

func (r *WarehouseRepository) GetWarehouses() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	query := r.Repository.GoquDBWrapper.
		Select("id", "name", "code", "location").
		From("warehouses").
		Order(goqu.I("id").Desc())

	if err := query.Executor().ScanStructs(&warehouses); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return warehouses, nil
}

func (r *WarehouseRepository) PersistWarehouse(warehouse *models.Warehouse) error {
	query := r.Repository.GoquDBWrapper.Insert("warehouses").
		Rows(goqu.Record{
			"name":     warehouse.Name,
			"code":     warehouse.Code,
			"location": warehouse.Location,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&warehouse.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return custom_error.WrapDBError("Duplicate warehouse name or code", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert warehouse record: %w", err)
	}

	return nil
}

// RemoveWarehouse deletes the warehouse together with its shelves. The
// shelf rows cascade, equipment on those shelves only loses its shelf
// reference. Missing id is a no-op.
func (r *WarehouseRepository) RemoveWarehouse(warehouseID int) error {
	return repository.WithTransaction(r.Repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		shelfIDs := tx.From("shelves").
			Select("id").
			Where(goqu.Ex{"warehouse_id": warehouseID})

		if _, err := tx.Update("equipment").
			Set(goqu.Record{"shelf_id": nil}).
			Where(goqu.C("shelf_id").In(shelfIDs)).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to clear equipment shelf references: %w", err)
		}

		if _, err := tx.Delete("shelves").
			Where(goqu.Ex{"warehouse_id": warehouseID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to delete warehouse shelves: %w", err)
		}

		if _, err := tx.Delete("warehouses").
			Where(goqu.Ex{"id": warehouseID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to delete warehouse: %w", err)
		}

		return nil
	})
}
