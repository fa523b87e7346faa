package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/counsel-scheduler/internal/middleware"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	ucSurvey "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/survey"
)

// ======================================================
// HANDLER
// ======================================================

type SurveyHandler struct {
	createProgramUC *ucSurvey.CreateProgram
	createUC        *ucSurvey.CreateSurvey
	getUC           *ucSurvey.GetSurvey
	reviseUC        *ucSurvey.ReviseSurvey
	respondUC       *ucSurvey.SubmitResponse
}

func NewSurveyHandler(
	createProgramUC *ucSurvey.CreateProgram,
	createUC *ucSurvey.CreateSurvey,
	getUC *ucSurvey.GetSurvey,
	reviseUC *ucSurvey.ReviseSurvey,
	respondUC *ucSurvey.SubmitResponse,
) *SurveyHandler {
	return &SurveyHandler{
		createProgramUC: createProgramUC,
		createUC:        createUC,
		getUC:           getUC,
		reviseUC:        reviseUC,
		respondUC:       respondUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProgramRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateSurveyRequest struct {
	ProgramID uint           `json:"program_id" binding:"required"`
	Type      string         `json:"type" binding:"required"`
	Questions []domain.Draft `json:"questions"`
}

type ReviseQuestionsRequest struct {
	Questions []domain.Draft `json:"questions"`
}

type SubmitResponseRequest struct {
	Answers []models.Answer `json:"answers"`
}

// ======================================================
// PROGRAMS
// ======================================================

func (h *SurveyHandler) CreateProgram(c *gin.Context) {
	var req CreateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.createProgramUC.Execute(c.Request.Context(), ucSurvey.CreateProgramInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// SURVEYS
// ======================================================

func (h *SurveyHandler) Create(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	var req CreateSurveyRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucSurvey.CreateSurveyInput{
		ActorID:   userID,
		ProgramID: req.ProgramID,
		Type:      req.Type,
		Questions: req.Questions,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}

// Get returns active questions only. Admins may pass include_deleted=true
// to see retired ones too.
func (h *SurveyHandler) Get(c *gin.Context) {
	_, role := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	includeDeleted := role == models.RoleAdmin && c.Query("include_deleted") == "true"

	s, err := h.getUC.Execute(c.Request.Context(), id, includeDeleted)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *SurveyHandler) ReviseQuestions(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ReviseQuestionsRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.reviseUC.Execute(c.Request.Context(), ucSurvey.ReviseSurveyInput{
		ActorID:   userID,
		SurveyID:  id,
		Questions: req.Questions,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *SurveyHandler) SubmitResponse(c *gin.Context) {
	userID, role := middleware.Caller(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req SubmitResponseRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.respondUC.Execute(c.Request.Context(), ucSurvey.SubmitResponseInput{
		SurveyID: id,
		UserID:   userID,
		Role:     role,
		Answers:  req.Answers,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, r)
}
