package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CatalogHandler struct {
	store catalog.Store
}

func NewCatalogHandler(store catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

type CreateBarberRequest struct {
	Name      string  `json:"name" binding:"required,notblank,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=255"`
	Bio       *string `json:"bio" binding:"omitempty,max=255"`
}

// Duration bounds mirror catalog.MinServiceDuration and MaxServiceDuration.
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,notblank,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	DurationMin int     `json:"duration_min" binding:"required,min=5,max=240"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.store.ListBarbers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.FromBarber(b))
	}
	httpresp.OK(c, out)
}

func (h *CatalogHandler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b := models.Barber{
		Name:      strings.TrimSpace(req.Name),
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	}

	ctx := c.Request.Context()
	if err := h.store.CreateBarber(ctx, &b); err != nil {
		writeError(c, err)
		return
	}

	created, err := h.store.GetBarber(ctx, b.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromBarber(*created))
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.FromService(s))
	}
	httpresp.OK(c, out)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	s := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	ctx := c.Request.Context()
	if err := h.store.CreateService(ctx, &s); err != nil {
		writeError(c, err)
		return
	}

	created, err := h.store.GetService(ctx, s.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromService(*created))
}
