package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type GoalHandler struct {
	svc service.GoalService
}

func NewGoalHandler(s service.GoalService) *GoalHandler {
	return &GoalHandler{svc: s}
}

// ListGoals godoc
//
//	@Summary	List goals
//	@Tags		goal
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Goal}
//	@Router		/goal [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateGoal godoc
//
//	@Summary	Create goal
//	@Tags		goal
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateGoalInput	true	"Goal fields"
//	@Success	201		{object}	serializer.Response{data=model.Goal}
//	@Router		/goal [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req service.CreateGoalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	g, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: g})
}

// ToggleGoal godoc
//
//	@Summary	Toggle goal done state
//	@Tags		goal
//	@Produce	json
//	@Param		goal_id	path		string	true	"Goal ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/goal/{goal_id}/toggle [put]
func (h *GoalHandler) ToggleGoal(c *gin.Context) {
	if err := h.svc.Toggle(c.Request.Context(), c.Param("goal_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteGoal godoc
//
//	@Summary	Delete goal
//	@Tags		goal
//	@Produce	json
//	@Param		goal_id	path		string	true	"Goal ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/goal/{goal_id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("goal_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
