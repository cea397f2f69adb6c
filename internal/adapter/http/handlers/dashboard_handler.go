package handlers

import (
	"net/http"

	"estimaflow/internal/adapter/http/dto/response"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(s))
}
