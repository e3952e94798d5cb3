package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type IdeaHandler struct {
	svc service.IdeaService
}

func NewIdeaHandler(s service.IdeaService) *IdeaHandler {
	return &IdeaHandler{svc: s}
}

// ListIdeas godoc
//
//	@Summary	List ideas
//	@Tags		idea
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Idea}
//	@Router		/idea [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateIdea godoc
//
//	@Summary	Capture an idea
//	@Tags		idea
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateIdeaInput	true	"Idea fields"
//	@Success	201		{object}	serializer.Response{data=model.Idea}
//	@Router		/idea [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	var req service.CreateIdeaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	i, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: i})
}

type SetIdeaStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// SetIdeaStatus godoc
//
//	@Summary	Set idea status
//	@Tags		idea
//	@Accept		json
//	@Produce	json
//	@Param		idea_id	path		string				true	"Idea ID"
//	@Param		body	body		SetIdeaStatusReq	true	"New status"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/idea/{idea_id}/status [put]
func (h *IdeaHandler) SetIdeaStatus(c *gin.Context) {
	var req SetIdeaStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), c.Param("idea_id"), req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteIdea godoc
//
//	@Summary	Delete idea
//	@Tags		idea
//	@Produce	json
//	@Param		idea_id	path		string	true	"Idea ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/idea/{idea_id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("idea_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
