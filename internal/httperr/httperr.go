package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httpresp"
)

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, httpresp.Envelope{
		Success: false,
		Message: message,
		Error:   code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps a workflow error onto the HTTP response.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		be = BusinessError{Kind: KindOperationFailed, Code: "operation_failed", Cause: err}
	}

	msg := messageFor(be.Code)

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, msg)
	case KindConflict:
		Conflict(c, be.Code, msg)
	case KindValidation:
		BadRequest(c, be.Code, msg)
	case KindUnauthorized:
		Forbidden(c, be.Code, msg)
	case KindUnauthenticated:
		Unauthorized(c, be.Code, msg)
	default:
		zap.L().Error("operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(be.Cause),
		)
		Internal(c, be.Code, msg)
	}
}
