package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

// fail maps service errors onto the response envelope: validation to
// 400, missing records to 404, everything else to 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("", err))
	default:
		c.JSON(http.StatusInternalServerError, serializer.StoreErr("", err))
	}
}
