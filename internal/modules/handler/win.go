package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type WinHandler struct {
	svc service.WinService
}

func NewWinHandler(s service.WinService) *WinHandler {
	return &WinHandler{svc: s}
}

// ListWins godoc
//
//	@Summary	List wins
//	@Tags		win
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Win}
//	@Router		/win [get]
func (h *WinHandler) ListWins(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateWin godoc
//
//	@Summary	Record a win
//	@Tags		win
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateWinInput	true	"Win fields"
//	@Success	201		{object}	serializer.Response{data=model.Win}
//	@Router		/win [post]
func (h *WinHandler) CreateWin(c *gin.Context) {
	var req service.CreateWinInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	w, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: w})
}

// WinStreak godoc
//
//	@Summary	Consecutive days with at least one win
//	@Tags		win
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=int}
//	@Router		/win/streak [get]
func (h *WinHandler) WinStreak(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Streak()})
}

// DeleteWin godoc
//
//	@Summary	Delete a win
//	@Tags		win
//	@Produce	json
//	@Param		win_id	path		string	true	"Win ID"
//	@Success	200		{object}	serializer.Response{}
//	@Router		/win/{win_id} [delete]
func (h *WinHandler) DeleteWin(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("win_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
