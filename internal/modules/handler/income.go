package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type IncomeHandler struct {
	svc service.IncomeService
}

func NewIncomeHandler(s service.IncomeService) *IncomeHandler {
	return &IncomeHandler{svc: s}
}

// ListIncome godoc
//
//	@Summary	List income entries
//	@Tags		income
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.IncomeEntry}
//	@Router		/income [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateIncome godoc
//
//	@Summary	Record an income entry
//	@Tags		income
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateIncomeInput	true	"Entry fields"
//	@Success	201		{object}	serializer.Response{data=model.IncomeEntry}
//	@Router		/income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req service.CreateIncomeInput
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

// IncomeStats godoc
//
//	@Summary	Monthly income aggregates
//	@Tags		income
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=service.IncomeStats}
//	@Router		/income/stats [get]
func (h *IncomeHandler) IncomeStats(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Stats()})
}

// DeleteIncome godoc
//
//	@Summary	Delete an income entry
//	@Tags		income
//	@Produce	json
//	@Param		entry_id	path		string	true	"Entry ID"
//	@Success	200			{object}	serializer.Response{}
//	@Router		/income/{entry_id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("entry_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
