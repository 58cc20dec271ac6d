package movements

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/equipment"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/shelves"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/metadata"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recentMovementsLimit caps the movement log view; there is no further
// pagination.
const recentMovementsLimit = 200

const msgMissingFields = "المعدة ونوع الحركة مطلوبان"

type MovementHandler struct {
	service       *MovementService
	repo          MovementRepository
	equipmentRepo equipment.EquipmentRepository
	shelfRepo     *shelves.ShelfRepository
	log           *zap.Logger
}

func NewMovementHandler(service *MovementService, repo MovementRepository, equipmentRepo equipment.EquipmentRepository, shelfRepo *shelves.ShelfRepository, log *zap.Logger) *MovementHandler {
	return &MovementHandler{
		service:       service,
		repo:          repo,
		equipmentRepo: equipmentRepo,
		shelfRepo:     shelfRepo,
		log:           log,
	}
}

func (h *MovementHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/movements", h.ListMovements)
	router.POST("/movements/create", h.CreateMovement)
}

func (h *MovementHandler) ListMovements(c *gin.Context) {
	movementRows, err := h.repo.GetRecentMovements(recentMovementsLimit)
	if err != nil {
		h.log.Error("Failed to list movements", zap.Error(err))
	}

	equipmentList, err := h.equipmentRepo.SearchEquipment("")
	if err != nil {
		h.log.Error("Failed to list equipment for movement form", zap.Error(err))
	}

	shelfList, err := h.shelfRepo.GetShelves()
	if err != nil {
		h.log.Error("Failed to list shelves for movement form", zap.Error(err))
	}

	c.HTML(http.StatusOK, "movements.html", gin.H{
		"User":      security.CurrentUser(c),
		"Items":     movementRows,
		"Equipment": equipmentList,
		"Shelves":   shelfList,
		"Types":     metadata.AllMovementTypes(),
		"Msg":       c.Query("msg"),
	})
}

func (h *MovementHandler) CreateMovement(c *gin.Context) {
	equipmentID, err := strconv.Atoi(strings.TrimSpace(c.PostForm("equipment_id")))
	movementType := strings.TrimSpace(c.PostForm("type"))

	if err != nil || movementType == "" {
		c.Redirect(http.StatusFound, "/movements?msg="+url.QueryEscape(msgMissingFields))
		return
	}

	movement := models.Movement{
		EquipmentID: equipmentID,
		Type:        movementType,
		ToPerson:    models.NullableString(strings.TrimSpace(c.PostForm("to_person"))),
		Project:     models.NullableString(strings.TrimSpace(c.PostForm("project"))),
		FromShelf:   models.NullableString(strings.TrimSpace(c.PostForm("from_shelf"))),
		ToShelf:     models.NullableString(strings.TrimSpace(c.PostForm("to_shelf"))),
		Notes:       models.NullableString(strings.TrimSpace(c.PostForm("notes"))),
	}

	if err := h.service.RecordMovement(&movement); err != nil {
		h.log.Error("Failed to record movement", zap.Int("equipment_id", equipmentID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/movements")
}
