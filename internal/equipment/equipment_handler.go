package equipment

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/shelves"
	custom_error "github.com/3zshihri-ux/warehouse-management-system1/pkg/errors"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgNameRequired = "اسم المعدة مطلوب"
	msgCodeConflict = "تعذر توليد كود المعدة، حاول مرة أخرى"
)

type EquipmentHandler struct {
	service   *EquipmentService
	repo      EquipmentRepository
	shelfRepo *shelves.ShelfRepository
	log       *zap.Logger
}

func NewEquipmentHandler(service *EquipmentService, repo EquipmentRepository, shelfRepo *shelves.ShelfRepository, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service:   service,
		repo:      repo,
		shelfRepo: shelfRepo,
		log:       log,
	}
}

func (h *EquipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/equipment", h.ListEquipment)
	router.POST("/equipment/create", h.CreateEquipment)
	router.POST("/equipment/:id/delete", h.DeleteEquipment)
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	searchQuery := strings.TrimSpace(c.Query("q"))

	items, err := h.repo.SearchEquipment(searchQuery)
	if err != nil {
		h.log.Error("Failed to list equipment", zap.Error(err))
	}

	shelfList, err := h.shelfRepo.GetShelves()
	if err != nil {
		h.log.Error("Failed to list shelves for equipment form", zap.Error(err))
	}

	c.HTML(http.StatusOK, "equipment_list.html", gin.H{
		"User":     security.CurrentUser(c),
		"Items":    items,
		"Shelves":  shelfList,
		"Statuses": metadata.AllStatuses(),
		"Q":        searchQuery,
		"Msg":      c.Query("msg"),
	})
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.Redirect(http.StatusFound, "/equipment?msg="+url.QueryEscape(msgNameRequired))
		return
	}

	equipment := models.Equipment{
		Name:         name,
		Category:     models.NullableString(strings.TrimSpace(c.PostForm("category"))),
		SerialNumber: models.NullableString(strings.TrimSpace(c.PostForm("serial_number"))),
		AssetNumber:  models.NullableString(strings.TrimSpace(c.PostForm("asset_number"))),
		Status:       strings.TrimSpace(c.PostForm("status")),
		Notes:        models.NullableString(strings.TrimSpace(c.PostForm("notes"))),
		ShelfID:      h.resolveShelfID(c.PostForm("shelf_id")),
	}

	if err := h.service.CreateEquipment(&equipment); err != nil {
		var uniqueErr *custom_error.UniqueViolationError
		if errors.As(err, &uniqueErr) {
			c.Redirect(http.StatusFound, "/equipment?msg="+url.QueryEscape(msgCodeConflict))
			return
		}
		h.log.Error("Failed to create equipment", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/equipment")
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/equipment")
		return
	}

	if err := h.repo.RemoveEquipment(equipmentID); err != nil {
		h.log.Error("Failed to delete equipment", zap.Int("id", equipmentID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/equipment")
}

// resolveShelfID maps the optional shelf_id form field to an existing
// shelf. Non-numeric or unknown values leave the reference unset.
func (h *EquipmentHandler) resolveShelfID(raw string) *int {
	shelfID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	shelf, err := h.shelfRepo.GetShelf(shelfID)
	if err != nil {
		h.log.Error("Failed to resolve shelf for equipment", zap.Int("shelf_id", shelfID), zap.Error(err))
		return nil
	}
	if shelf == nil {
		return nil
	}

	return &shelf.ID
}
