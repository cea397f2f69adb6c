package handlers

import (
	"net/http"
	"strconv"

	request "estimaflow/internal/adapter/http/dto/request"
	response "estimaflow/internal/adapter/http/dto/response"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) Replace(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	updated, err := h.usecase.Replace(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) List(c *gin.Context) {
	opts, err := request.ParseProjectQuery(c.Request.URL.Query())
	if err != nil {
		writeError(c, queryError(err))
		return
	}

	res, err := h.usecase.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.Header(headerTotalCount, strconv.Itoa(res.Total))
	c.Header(exposeHeadersHeader, headerTotalCount)
	c.JSON(http.StatusOK, response.FromProjects(res.Data))
}

func (h *ProjectHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.ProjectStatuses())
}
