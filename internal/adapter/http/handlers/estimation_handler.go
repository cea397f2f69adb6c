package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	request "estimaflow/internal/adapter/http/dto/request"
	response "estimaflow/internal/adapter/http/dto/response"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	headerTotalCount    = "X-Total-Count"
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exposeHeadersHeader = "Access-Control-Expose-Headers"
)

// EstimationExporter renders an estimation as a downloadable file.
type EstimationExporter interface {
	Generate(e entities.Estimation) (*bytes.Buffer, error)
	FileName(e entities.Estimation) string
}

type EstimationHandler struct {
	usecase  usecase.IEstimationUseCase
	exporter EstimationExporter
}

func NewEstimationHandler(uc usecase.IEstimationUseCase, exporter EstimationExporter) *EstimationHandler {
	return &EstimationHandler{usecase: uc, exporter: exporter}
}

func (h *EstimationHandler) Create(c *gin.Context) {
	var payload request.EstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimation(created))
}

func (h *EstimationHandler) Get(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// Replace swaps the whole estimation; PUT and PATCH behave the same.
func (h *EstimationHandler) Replace(c *gin.Context) {
	var payload request.EstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	updated, err := h.usecase.Replace(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(updated))
}

func (h *EstimationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// List answers json-server style: the page as a bare array, the unpaged count
// in X-Total-Count.
func (h *EstimationHandler) List(c *gin.Context) {
	filter, page, err := request.ParseEstimationQuery(c.Request.URL.Query())
	if err != nil {
		writeError(c, queryError(err))
		return
	}

	res, err := h.usecase.List(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.Header(headerTotalCount, strconv.Itoa(res.Total))
	c.Header(exposeHeadersHeader, headerTotalCount)
	c.JSON(http.StatusOK, response.FromEstimations(res.Data))
}

func (h *EstimationHandler) Totals(c *gin.Context) {
	t, err := h.usecase.Totals(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(t))
}

func (h *EstimationHandler) Export(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}

	buf, err := h.exporter.Generate(e)
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+h.exporter.FileName(e)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
