package shelves

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/warehouses"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgMissingFields = "المستودع والكود مطلوبان"

type ShelfHandler struct {
	repo          *ShelfRepository
	warehouseRepo *warehouses.WarehouseRepository
	log           *zap.Logger
}

func NewShelfHandler(repo *ShelfRepository, warehouseRepo *warehouses.WarehouseRepository, log *zap.Logger) *ShelfHandler {
	return &ShelfHandler{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		log:           log,
	}
}

func (h *ShelfHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/shelves", h.ListShelves)
	router.POST("/shelves/create", h.CreateShelf)
	router.POST("/shelves/:id/delete", h.DeleteShelf)
}

func (h *ShelfHandler) ListShelves(c *gin.Context) {
	shelves, err := h.repo.GetShelfRows()
	if err != nil {
		h.log.Error("Failed to list shelves", zap.Error(err))
	}

	warehouseList, err := h.warehouseRepo.GetWarehouses()
	if err != nil {
		h.log.Error("Failed to list warehouses for shelf form", zap.Error(err))
	}

	c.HTML(http.StatusOK, "shelves.html", gin.H{
		"User":       security.CurrentUser(c),
		"Items":      shelves,
		"Warehouses": warehouseList,
		"Msg":        c.Query("msg"),
	})
}

func (h *ShelfHandler) CreateShelf(c *gin.Context) {
	warehouseID, err := strconv.Atoi(strings.TrimSpace(c.PostForm("warehouse_id")))
	code := strings.ToUpper(strings.TrimSpace(c.PostForm("code")))
	description := strings.TrimSpace(c.PostForm("description"))

	if err != nil || code == "" {
		c.Redirect(http.StatusFound, "/shelves?msg="+url.QueryEscape(msgMissingFields))
		return
	}

	shelf := models.Shelf{
		WarehouseID: warehouseID,
		Code:        code,
		Description: models.NullableString(description),
	}

	if err := h.repo.PersistShelf(&shelf); err != nil {
		h.log.Error("Failed to create shelf", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/shelves")
}

func (h *ShelfHandler) DeleteShelf(c *gin.Context) {
	shelfID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/shelves")
		return
	}

	if err := h.repo.RemoveShelf(shelfID); err != nil {
		h.log.Error("Failed to delete shelf", zap.Int("id", shelfID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/shelves")
}
