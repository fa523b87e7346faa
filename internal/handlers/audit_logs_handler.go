package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	"github.com/BruksfildServices01/counsel-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db    *gorm.DB
	clock *timezone.Clock
}

func NewAuditLogsHandler(db *gorm.DB, clock *timezone.Clock) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, clock: clock}
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	actorID := uintQuery(c, "actor_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if actorID != 0 {
		q = q.Where("actor_id = ?", actorID)
	}

	// from/to are calendar days in the platform timezone
	loc := h.clock.Location()

	if fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, httperr.ErrOperationFailed(err))
		return
	}

	// --------------------------------------------------
	// Page
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Respond(c, httperr.ErrOperationFailed(err))
		return
	}

	httpresp.OK(c, AuditLogPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
