package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/counsel-scheduler/internal/middleware"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
	deleteUC *ucBooking.DeleteBooking
	listUC   *ucBooking.ListBookings
	checkUC  *ucBooking.CheckAvailability
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
	listUC *ucBooking.ListBookings,
	checkUC *ucBooking.CheckAvailability,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		checkUC:  checkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ConsultantID uint   `json:"consultant_id" binding:"required"`
	SlotID       uint   `json:"slot_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Notes        string `json:"notes"`
}

type AvailabilityResponse struct {
	Available bool                `json:"available"`
	Conflict  domain.ConflictKind `json:"conflict,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		MemberID:     userID,
		ConsultantID: req.ConsultantID,
		SlotID:       req.SlotID,
		Date:         req.Date,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	userID, role := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var patch domain.Patch
	if !bindJSON(c, &patch) {
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		BookingID: id,
		Actor:     ucBooking.Actor{UserID: userID, Role: role},
		Patch:     patch,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Booking deleted.", nil)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID, role := middleware.Caller(c)

	items, err := h.listUC.Execute(c.Request.Context(), ucBooking.ListBookingsInput{
		Actor:        ucBooking.Actor{UserID: userID, Role: role},
		Status:       c.Query("status"),
		MemberID:     uintQuery(c, "member_id"),
		ConsultantID: uintQuery(c, "consultant_id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List[models.Booking](c, items)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	userID, role := middleware.Caller(c)

	memberID := userID
	if role == models.RoleAdmin {
		if m := uintQuery(c, "member_id"); m != 0 {
			memberID = m
		}
	}

	d, err := h.checkUC.Execute(c.Request.Context(), ucBooking.CheckAvailabilityInput{
		MemberID:     memberID,
		ConsultantID: uintQuery(c, "consultant_id"),
		SlotID:       uintQuery(c, "slot_id"),
		Date:         c.Query("date"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, AvailabilityResponse{
		Available: d.Allowed,
		Conflict:  d.Conflict,
	})
}
