package container

import (
	"database/sql"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/auth"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/config"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/dashboard"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/equipment"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/movements"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/repository"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/shelves"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/users"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/warehouses"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository       *repository.Repository
	Sessions         *security.SessionManager
	UserRepository   users.UserRepository
	AuthHandler      *auth.Handler
	DashboardHandler *dashboard.DashboardHandler
	WarehouseHandler *warehouses.WarehouseHandler
	ShelfHandler     *shelves.ShelfHandler
	EquipmentHandler *equipment.EquipmentHandler
	MovementHandler  *movements.MovementHandler
}

func NewAppContainer(db *sql.DB, cfg *config.Config, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	sessions := security.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	userRepo := users.NewRepository(repo)
	authHandler := auth.NewHandler(userRepo, sessions, log)

	dashboardRepo := dashboard.NewDashboardRepository(repo)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardRepo, log)

	warehouseRepo := warehouses.NewWarehouseRepository(repo)
	warehouseHandler := warehouses.NewWarehouseHandler(warehouseRepo, log)

	shelfRepo := shelves.NewShelfRepository(repo)
	shelfHandler := shelves.NewShelfHandler(shelfRepo, warehouseRepo, log)

	equipmentRepo := equipment.NewEquipmentRepository(repo)
	equipmentService := equipment.NewEquipmentService(equipmentRepo)
	equipmentHandler := equipment.NewEquipmentHandler(equipmentService, equipmentRepo, shelfRepo, log)

	movementRepo := movements.NewMovementRepository(repo)
	movementService := movements.NewMovementService(movementRepo, log)
	movementHandler := movements.NewMovementHandler(movementService, movementRepo, equipmentRepo, shelfRepo, log)

	return &Container{
		Repository:       repo,
		Sessions:         sessions,
		UserRepository:   userRepo,
		AuthHandler:      authHandler,
		DashboardHandler: dashboardHandler,
		WarehouseHandler: warehouseHandler,
		ShelfHandler:     shelfHandler,
		EquipmentHandler: equipmentHandler,
		MovementHandler:  movementHandler,
	}
}
