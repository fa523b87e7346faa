package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

// idParam reads a positive numeric path parameter, answering 400 itself
// when it is not one.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.ErrValidation("invalid_id"))
		return 0, false
	}
	return uint(id), true
}

// uintQuery reads an optional numeric query value. Missing or malformed
// values read as zero.
func uintQuery(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Write(c, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}
