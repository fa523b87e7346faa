package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/counsel-scheduler/internal/middleware"
	ucAccount "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/account"
)

type MeHandler struct {
	getMeUC  *ucAccount.GetMe
	avatarUC *ucAccount.UploadAvatar
}

func NewMeHandler(
	getMeUC *ucAccount.GetMe,
	avatarUC *ucAccount.UploadAvatar,
) *MeHandler {
	return &MeHandler{
		getMeUC:  getMeUC,
		avatarUC: avatarUC,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	u, err := h.getMeUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}

// UploadAvatar expects a multipart form with the picture in "file".
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID, _ := middleware.Caller(c)

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_image"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, httperr.ErrOperationFailed(err))
		return
	}
	defer f.Close()

	u, err := h.avatarUC.Execute(c.Request.Context(), userID, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}
