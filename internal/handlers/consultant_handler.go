package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/counsel-scheduler/internal/middleware"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	ucConsultant "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/consultant"
)

// ======================================================
// HANDLER
// ======================================================

type ConsultantHandler struct {
	createUC     *ucConsultant.CreateConsultant
	deleteUC     *ucConsultant.DeleteConsultant
	listUC       *ucConsultant.ListConsultants
	createSlotUC *ucConsultant.CreateSlot
	assignSlotUC *ucConsultant.AssignSlot
}

func NewConsultantHandler(
	createUC *ucConsultant.CreateConsultant,
	deleteUC *ucConsultant.DeleteConsultant,
	listUC *ucConsultant.ListConsultants,
	createSlotUC *ucConsultant.CreateSlot,
	assignSlotUC *ucConsultant.AssignSlot,
) *ConsultantHandler {
	return &ConsultantHandler{
		createUC:     createUC,
		deleteUC:     deleteUC,
		listUC:       listUC,
		createSlotUC: createSlotUC,
		assignSlotUC: assignSlotUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateConsultantRequest struct {
	UserID        uint   `json:"user_id" binding:"required"`
	MeetingLink   string `json:"meeting_link"`
	Certification string `json:"certification"`
	Speciality    string `json:"speciality"`
}

type CreateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AssignSlotRequest struct {
	SlotID  uint `json:"slot_id" binding:"required"`
	Weekday *int `json:"weekday" binding:"required"`
}

// ======================================================
// CONSULTANTS
// ======================================================

func (h *ConsultantHandler) Create(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	var req CreateConsultantRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucConsultant.CreateConsultantInput{
		ActorID:       userID,
		UserID:        req.UserID,
		MeetingLink:   req.MeetingLink,
		Certification: req.Certification,
		Speciality:    req.Speciality,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ConsultantHandler) List(c *gin.Context) {
	items, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List[ucConsultant.ConsultantSchedule](c, items)
}

// Delete removes the consultant outright or, when they have booking
// history, deactivates them and cancels their open bookings.
func (h *ConsultantHandler) Delete(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// SLOTS
// ======================================================

func (h *ConsultantHandler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.createSlotUC.Execute(c.Request.Context(), req.StartTime, req.EndTime)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ConsultantHandler) AssignSlot(c *gin.Context) {
	userID, role := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AssignSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	cs, err := h.assignSlotUC.Execute(c.Request.Context(), ucConsultant.AssignSlotInput{
		ActorUserID:  userID,
		ActorIsAdmin: role == models.RoleAdmin,
		ConsultantID: id,
		SlotID:       req.SlotID,
		Weekday:      *req.Weekday,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, cs)
}
