package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type CRMHandler struct {
	svc service.CRMService
}

func NewCRMHandler(s service.CRMService) *CRMHandler {
	return &CRMHandler{svc: s}
}

// ListClients godoc
//
//	@Summary	List clients
//	@Tags		crm
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Client}
//	@Router		/crm [get]
func (h *CRMHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateClient godoc
//
//	@Summary	Add a client
//	@Tags		crm
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateClientInput	true	"Client fields"
//	@Success	201		{object}	serializer.Response{data=model.Client}
//	@Router		/crm [post]
func (h *CRMHandler) CreateClient(c *gin.Context) {
	var req service.CreateClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	cl, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: cl})
}

type SetClientStageReq struct {
	Stage string `json:"stage" binding:"required"`
}

// SetClientStage godoc
//
//	@Summary	Move a client to another pipeline stage
//	@Tags		crm
//	@Accept		json
//	@Produce	json
//	@Param		client_id	path		string				true	"Client ID"
//	@Param		body		body		SetClientStageReq	true	"New stage"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/crm/{client_id}/stage [put]
func (h *CRMHandler) SetClientStage(c *gin.Context) {
	var req SetClientStageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetStage(c.Request.Context(), c.Param("client_id"), req.Stage); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// PipelineSummary godoc
//
//	@Summary	Pipeline value and stage counts
//	@Tags		crm
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=service.PipelineSummary}
//	@Router		/crm/summary [get]
func (h *CRMHandler) PipelineSummary(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Summary()})
}

// DeleteClient godoc
//
//	@Summary	Delete a client
//	@Tags		crm
//	@Produce	json
//	@Param		client_id	path		string	true	"Client ID"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/crm/{client_id} [delete]
func (h *CRMHandler) DeleteClient(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("client_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
