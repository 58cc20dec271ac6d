package warehouses

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	custom_error "github.com/3zshihri-ux/warehouse-management-system1/pkg/errors"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgMissingFields = "الاسم والكود مطلوبان"
	msgDuplicate     = "اسم أو كود المستودع مستخدم من قبل"
)

type WarehouseHandler struct {
	repo *WarehouseRepository
	log  *zap.Logger
}

func NewWarehouseHandler(repo *WarehouseRepository, log *zap.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		repo: repo,
		log:  log,
	}
}

func (h *WarehouseHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/warehouses", h.ListWarehouses)
	router.POST("/warehouses/create", h.CreateWarehouse)
	router.POST("/warehouses/:id/delete", h.DeleteWarehouse)
}

func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.repo.GetWarehouses()
	if err != nil {
		h.log.Error("Failed to list warehouses", zap.Error(err))
	}

	c.HTML(http.StatusOK, "warehouses.html", gin.H{
		"User":  security.CurrentUser(c),
		"Items": warehouses,
		"Msg":   c.Query("msg"),
	})
}

func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	code := strings.ToUpper(strings.TrimSpace(c.PostForm("code")))
	location := strings.TrimSpace(c.PostForm("location"))

	if name == "" || code == "" {
		c.Redirect(http.StatusFound, "/warehouses?msg="+url.QueryEscape(msgMissingFields))
		return
	}

	warehouse := models.Warehouse{
		Name:     name,
		Code:     code,
		Location: models.NullableString(location),
	}

	if err := h.repo.PersistWarehouse(&warehouse); err != nil {
		var uniqueErr *custom_error.UniqueViolationError
		if errors.As(err, &uniqueErr) {
			c.Redirect(http.StatusFound, "/warehouses?msg="+url.QueryEscape(msgDuplicate))
			return
		}
		h.log.Error("Failed to create warehouse", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/warehouses")
}

func (h *WarehouseHandler) DeleteWarehouse(c *gin.Context) {
	warehouseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/warehouses")
		return
	}

	if err := h.repo.RemoveWarehouse(warehouseID); err != nil {
		h.log.Error("Failed to delete warehouse", zap.Int("id", warehouseID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/warehouses")
}
