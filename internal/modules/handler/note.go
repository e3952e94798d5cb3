package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type NoteHandler struct {
	svc service.NoteService
}

func NewNoteHandler(s service.NoteService) *NoteHandler {
	return &NoteHandler{svc: s}
}

// ListNotes godoc
//
//	@Summary	List notes
//	@Tags		note
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Note}
//	@Router		/note [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateNote godoc
//
//	@Summary	Create note
//	@Tags		note
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateNoteInput	true	"Note fields"
//	@Success	201		{object}	serializer.Response{data=model.Note}
//	@Router		/note [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req service.CreateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	n, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: n})
}

type EditNoteReq struct {
	Body string `json:"body" binding:"required"`
}

// EditNote godoc
//
//	@Summary	Overwrite a note body
//	@Tags		note
//	@Accept		json
//	@Produce	json
//	@Param		note_id	path		string		true	"Note ID"
//	@Param		body	body		EditNoteReq	true	"New body"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/note/{note_id} [put]
func (h *NoteHandler) EditNote(c *gin.Context) {
	var req EditNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.EditBody(c.Request.Context(), c.Param("note_id"), req.Body); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteNote godoc
//
//	@Summary	Delete note
//	@Tags		note
//	@Produce	json
//	@Param		note_id	path		string	true	"Note ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/note/{note_id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("note_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
