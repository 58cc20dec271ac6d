package dashboard

import (
	"net/http"

	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	repo *DashboardRepository
	log  *zap.Logger
}

func NewDashboardHandler(repo *DashboardRepository, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		repo: repo,
		log:  log,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Dashboard)
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	counts, err := h.repo.GetCounts()
	if err != nil {
		h.log.Error("Failed to load dashboard counts", zap.Error(err))
		counts = &models.DashboardCounts{}
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":   security.CurrentUser(c),
		"Counts": counts,
	})
}
