package shelves

import (
	"fmt"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	custom_error "github.com/3zshihri-ux/warehouse-management-system1/pkg/errors"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type ShelfRepository struct {
	Repository *repository.Repository
}

func NewShelfRepository(r *repository.Repository) *ShelfRepository {
	return &ShelfRepository{Repository: r}
}

func (r *ShelfRepository) GetShelves() ([]models.Shelf, error) {
	var shelves []models.Shelf
	query := r.Repository.GoquDBWrapper.
		Select("id", "warehouse_id", "code", "description").
		From("shelves").
		Order(goqu.I("id").Desc())

	if err := query.Executor().ScanStructs(&shelves); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return shelves, nil
}

// GetShelfRows returns the list-view projection with the owning warehouse
// name joined in.
func (r *ShelfRepository) GetShelfRows() ([]models.ShelfRow, error) {
	var rows []models.ShelfRow
	query := r.Repository.GoquDBWrapper.
		From(goqu.T("shelves").As("s")).
		LeftJoin(
			goqu.T("warehouses").As("w"),
			goqu.On(goqu.Ex{"s.warehouse_id": goqu.I("w.id")}),
		).
		Select(
			goqu.I("s.id").As("id"),
			goqu.I("s.warehouse_id").As("warehouse_id"),
			goqu.I("w.name").As("warehouse_name"),
			goqu.I("s.code").As("code"),
			goqu.I("s.description").As("description"),
		).
		Order(goqu.I("s.id").Desc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return rows, nil
}

func (r *ShelfRepository) GetShelf(shelfID int) (*models.Shelf, error) {
	var shelf models.Shelf
	query := r.Repository.GoquDBWrapper.
		Select("id", "warehouse_id", "code", "description").
		From("shelves").
		Where(goqu.Ex{"id": shelfID})

	found, err := query.Executor().ScanStruct(&shelf)
	if err != nil {
		return nil, fmt.Errorf("failed to get shelf: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &shelf, nil
}

func (r *ShelfRepository) PersistShelf(shelf *models.Shelf) error {
	query := r.Repository.GoquDBWrapper.Insert("shelves").
		Rows(goqu.Record{
			"warehouse_id": shelf.WarehouseID,
			"code":         shelf.Code,
			"description":  shelf.Description,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&shelf.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && (pqErr.Code == "23505" || pqErr.Code == "23503") {
			return custom_error.WrapDBError("Shelf references a missing warehouse", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert shelf record: %w", err)
	}

	return nil
}

// RemoveShelf deletes a shelf; equipment on it keeps its row and loses the
// shelf reference. Missing id is a no-op.
func (r *ShelfRepository) RemoveShelf(shelfID int) error {
	return repository.WithTransaction(r.Repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Update("equipment").
			Set(goqu.Record{"shelf_id": nil}).
			Where(goqu.Ex{"shelf_id": shelfID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to clear equipment shelf references: %w", err)
		}

		if _, err := tx.Delete("shelves").
			Where(goqu.Ex{"id": shelfID}).
			Executor().Exec(); err != nil {
			return fmt.Errorf("failed to delete shelf: %w", err)
		}

		return nil
	})
}
