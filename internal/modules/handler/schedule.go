package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type ScheduleHandler struct {
	svc service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: s}
}

// Schedule godoc
//
//	@Summary	The whole schedule, a map of calendar date to tasks
//	@Tags		schedule
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=map[string][]model.ScheduleTask}
//	@Router		/schedule [get]
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.All()})
}

// AddTask godoc
//
//	@Summary	Append a task to a calendar date
//	@Tags		schedule
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.AddTaskInput	true	"Date and task text"
//	@Success	201		{object}	serializer.Response{data=model.ScheduleTask}
//	@Router		/schedule/task [post]
func (h *ScheduleHandler) AddTask(c *gin.Context) {
	var req service.AddTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t, err := h.svc.AddTask(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: t})
}

// ToggleTask godoc
//
//	@Summary	Toggle a task done state
//	@Tags		schedule
//	@Produce	json
//	@Param		date	path		string	true	"Calendar date, e.g. 2025-06-01"
//	@Param		task_id	path		string	true	"Task ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/schedule/{date}/{task_id}/toggle [put]
func (h *ScheduleHandler) ToggleTask(c *gin.Context) {
	if err := h.svc.Toggle(c.Request.Context(), c.Param("date"), c.Param("task_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// RemoveTask godoc
//
//	@Summary	Remove a task from a calendar date
//	@Tags		schedule
//	@Produce	json
//	@Param		date	path		string	true	"Calendar date"
//	@Param		task_id	path		string	true	"Task ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/schedule/{date}/{task_id} [delete]
func (h *ScheduleHandler) RemoveTask(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("date"), c.Param("task_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
