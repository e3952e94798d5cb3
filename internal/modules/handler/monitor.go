package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type MonitorHandler struct {
	svc service.MonitorService
}

func NewMonitorHandler(s service.MonitorService) *MonitorHandler {
	return &MonitorHandler{svc: s}
}

// ListMonitors godoc
//
//	@Summary	List uptime monitors
//	@Tags		monitor
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Monitor}
//	@Router		/monitor [get]
func (h *MonitorHandler) ListMonitors(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateMonitor godoc
//
//	@Summary		Register a monitor
//	@Description	The new monitor starts in the checking state and is probed in the background.
//	@Tags			monitor
//	@Accept			json
//	@Produce		json
//	@Param			body	body		service.CreateMonitorInput	true	"Monitor fields"
//	@Success		201		{object}	serializer.Response{data=model.Monitor}
//	@Router			/monitor [post]
func (h *MonitorHandler) CreateMonitor(c *gin.Context) {
	var req service.CreateMonitorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	m, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: m})
}

// CheckMonitor godoc
//
//	@Summary	Probe a single monitor now
//	@Tags		monitor
//	@Produce	json
//	@Param		monitor_id	path		string	true	"Monitor ID"
//	@Success	200			{object}	serializer.Response{data=model.Monitor}
//	@Router		/monitor/{monitor_id}/check [post]
func (h *MonitorHandler) CheckMonitor(c *gin.Context) {
	m, err := h.svc.Check(c.Request.Context(), c.Param("monitor_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: m})
}

// CheckAllMonitors godoc
//
//	@Summary	Probe every monitor and wait for all to settle
//	@Tags		monitor
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=int}
//	@Router		/monitor/check [post]
func (h *MonitorHandler) CheckAllMonitors(c *gin.Context) {
	n := h.svc.CheckAll(c.Request.Context())
	c.JSON(http.StatusOK, serializer.Response{Data: n})
}

// DeleteMonitor godoc
//
//	@Summary	Delete monitor
//	@Tags		monitor
//	@Produce	json
//	@Param		monitor_id	path		string	true	"Monitor ID"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/monitor/{monitor_id} [delete]
func (h *MonitorHandler) DeleteMonitor(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("monitor_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
