package dashboard

import (
	"fmt"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type DashboardRepository struct {
	Repository *repository.Repository
}

func NewDashboardRepository(r *repository.Repository) *DashboardRepository {
	return &DashboardRepository{Repository: r}
}

func (r *DashboardRepository) GetCounts() (*models.DashboardCounts, error) {
	counts := models.DashboardCounts{}
	var err error

	if counts.TotalEquipment, err = r.Repository.GoquDBWrapper.From("equipment").Count(); err != nil {
		return nil, fmt.Errorf("failed to count equipment: %w", err)
	}
	if counts.Ready, err = r.countEquipmentByStatus(metadata.StatusReady); err != nil {
		return nil, err
	}
	if counts.InOperation, err = r.countEquipmentByStatus(metadata.StatusInOperation); err != nil {
		return nil, err
	}
	if counts.Maintenance, err = r.countEquipmentByStatus(metadata.StatusMaintenance); err != nil {
		return nil, err
	}
	if counts.Damaged, err = r.countEquipmentByStatus(metadata.StatusDamaged); err != nil {
		return nil, err
	}
	if counts.Rented, err = r.countEquipmentByStatus(metadata.StatusRented); err != nil {
		return nil, err
	}
	if counts.Warehouses, err = r.Repository.GoquDBWrapper.From("warehouses").Count(); err != nil {
		return nil, fmt.Errorf("failed to count warehouses: %w", err)
	}
	if counts.Shelves, err = r.Repository.GoquDBWrapper.From("shelves").Count(); err != nil {
		return nil, fmt.Errorf("failed to count shelves: %w", err)
	}

	return &counts, nil
}

func (r *DashboardRepository) countEquipmentByStatus(status metadata.Status) (int64, error) {
	count, err := r.Repository.GoquDBWrapper.
		From("equipment").
		Where(goqu.Ex{"status": string(status)}).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count equipment with status %s: %w", status, err)
	}

	return count, nil
}
