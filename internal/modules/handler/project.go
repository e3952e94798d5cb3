package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		project
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/project [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateProject godoc
//
//	@Summary	Create project
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateProjectInput	true	"Project fields"
//	@Success	201		{object}	serializer.Response{data=model.Project}
//	@Router		/project [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

type SetProjectStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// SetProjectStatus godoc
//
//	@Summary	Set project status
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		project_id	path		string				true	"Project ID"
//	@Param		body		body		SetProjectStatusReq	true	"New status"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/project/{project_id}/status [put]
func (h *ProjectHandler) SetProjectStatus(c *gin.Context) {
	var req SetProjectStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), c.Param("project_id"), req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteProject godoc
//
//	@Summary	Delete project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path		string	true	"Project ID"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/project/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("project_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
