package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	"github.com/nightclaw/mission-control/internal/modules/service"
)

type OverviewHandler struct {
	svc service.OverviewService
}

func NewOverviewHandler(s service.OverviewService) *OverviewHandler {
	return &OverviewHandler{svc: s}
}

// Overview godoc
//
//	@Summary	Dashboard summary counts, recent activity and the featured monitor
//	@Tags		overview
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=service.OverviewSummary}
//	@Router		/overview [get]
func (h *OverviewHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Summary()})
}
