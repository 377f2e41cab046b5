package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	cancel *ucAppointment.CancelAppointment
	check  *ucAppointment.CheckAvailability
	list   *ucAppointment.ListAppointments
	get    *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	check *ucAppointment.CheckAvailability,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		cancel: cancel,
		check:  check,
		list:   list,
		get:    get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string           `json:"customer_name" binding:"required,notblank,max=100"`
	CustomerPhone string           `json:"customer_phone" binding:"required,notblank,max=30"`
	BarberID      string           `json:"barber_id" binding:"required"`
	ServiceName   string           `json:"service_name" binding:"required,notblank,max=100"`
	StartTime     timezone.Instant `json:"start_time"`
	DurationMin   int              `json:"duration_min" binding:"required,min=5,max=240"`
	Notes         *string          `json:"notes" binding:"omitempty,max=255"`
}

// ======================================================
// LIST (public, masked)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), c.Query("barber_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, items)
}

// ======================================================
// CHECK
// ======================================================

func (h *AppointmentHandler) Check(c *gin.Context) {
	start, err := timezone.ParseInstant("start_time", c.Query("start_time"))
	if err != nil {
		writeError(c, err)
		return
	}

	rawDuration := strings.TrimSpace(c.Query("duration_min"))
	duration, err := strconv.Atoi(rawDuration)
	if err != nil {
		httperr.BadRequest(c, codeInvalidRequest, "duration_min: must be an integer")
		return
	}

	ok, err := h.check.Execute(c.Request.Context(), ucAppointment.CheckAvailabilityInput{
		BarberID:    c.Query("barber_id"),
		StartTime:   start,
		DurationMin: duration,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"available": ok})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		BarberID:      req.BarberID,
		ServiceName:   req.ServiceName,
		StartTime:     req.StartTime.Time,
		DurationMin:   req.DurationMin,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap))
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}
