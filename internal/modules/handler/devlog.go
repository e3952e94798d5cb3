package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type DevLogHandler struct {
	svc service.DevLogService
}

func NewDevLogHandler(s service.DevLogService) *DevLogHandler {
	return &DevLogHandler{svc: s}
}

// ListLogs godoc
//
//	@Summary	List dev log entries, newest first
//	@Tags		devlog
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.DevLogEntry}
//	@Router		/devlog [get]
func (h *DevLogHandler) ListLogs(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateLog godoc
//
//	@Summary	Append a dev log entry
//	@Tags		devlog
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateLogInput	true	"Entry fields"
//	@Success	201		{object}	serializer.Response{data=model.DevLogEntry}
//	@Router		/devlog [post]
func (h *DevLogHandler) CreateLog(c *gin.Context) {
	var req service.CreateLogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	e, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: e})
}

// DeleteLog godoc
//
//	@Summary	Delete a dev log entry
//	@Tags		devlog
//	@Produce	json
//	@Param		entry_id	path		string	true	"Entry ID"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/devlog/{entry_id} [delete]
func (h *DevLogHandler) DeleteLog(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("entry_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
