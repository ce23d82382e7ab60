package controller

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"swingshift_backend/internal/service"
	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	ResultsService *service.ResultsService
	ExportService  *service.ExportService
	ProjectService *service.ProjectService
}

func NewResultsController(resultsService *service.ResultsService, exportService *service.ExportService, projectService *service.ProjectService) *ResultsController {
	return &ResultsController{
		ResultsService: resultsService,
		ExportService:  exportService,
		ProjectService: projectService,
	}
}

// @Summary Get project results
// @Description Per-question answer distributions over completed responses
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {array} service.QuestionResult
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id}/results [get]
func (c *ResultsController) GetResults(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	results, err := c.ResultsService.ProjectResults(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary Export project responses as CSV
// @Description One row per completed response, one column per question in project order
// @Tags results
// @Produce text/csv
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {string} string "CSV payload"
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id}/export/csv [get]
func (c *ResultsController) ExportCSV(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	rows, filename, err := c.ExportService.ExportCSV(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)

	w := csv.NewWriter(ctx.Writer)
	if err := w.WriteAll(rows); err != nil {
		util.LogInternalError(ctx, err)
	}
}
