package routes

import (
	"github.com/3zshihri-ux/warehouse-management-system1/internal/core/container"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/middleware"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.AuthHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.SessionMiddleware(container.Sessions, container.UserRepository))

	container.DashboardHandler.RegisterRoutes(protectedRoutes)
	container.EquipmentHandler.RegisterRoutes(protectedRoutes)
	container.WarehouseHandler.RegisterRoutes(protectedRoutes)
	container.ShelfHandler.RegisterRoutes(protectedRoutes)
	container.MovementHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckHandler())
}
