package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/account"
)

type AuthHandler struct {
	registerUC *ucAccount.Register
	loginUC    *ucAccount.Login
}

func NewAuthHandler(
	registerUC *ucAccount.Register,
	loginUC *ucAccount.Login,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.registerUC.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.loginUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}
