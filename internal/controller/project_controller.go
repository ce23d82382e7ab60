package controller

import (
	"strconv"

	"swingshift_backend/internal/service"
	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService     *service.ProjectService
	QuestionSetService *service.QuestionSetService
}

func NewProjectController(projectService *service.ProjectService, questionSetService *service.QuestionSetService) *ProjectController {
	return &ProjectController{ProjectService: projectService, QuestionSetService: questionSetService}
}

func projectID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid project id")
		return 0, false
	}
	return uint(id), true
}

// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param project body service.CreateProjectRequest true "Project definition"
// @Success 201 {object} model.Project
// @Failure 400 {object} util.ErrorResponse
// @Router /api/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req service.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	project, err := c.ProjectService.CreateProject(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, project)
}

// @Summary List projects
// @Description Lists projects with response and question counts, newest first
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} service.ProjectSummary
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.ProjectService.ListProjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// @Summary Get a project
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	project, err := c.ProjectService.GetProject(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

// @Summary Update a project
// @Description Partially updates project settings and status; first open and first close are timestamped once
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param project body service.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} model.Project
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	project, err := c.ProjectService.UpdateProject(id, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

// @Summary List a project's questions
// @Description Returns the merged, ordered question set with overrides applied
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {array} service.RenderedQuestion
// @Router /api/projects/{id}/questions [get]
func (c *ProjectController) ListProjectQuestions(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	questions, err := c.QuestionSetService.ListRendered(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Sync a project's question selection
// @Description Reconciles the stored selection against the submitted bank question ids in one transaction
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param selection body service.SyncQuestionsRequest true "Desired selection"
// @Success 200 {object} service.SyncResult
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id}/questions/bulk [post]
func (c *ProjectController) SyncQuestions(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	var req service.SyncQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.QuestionSetService.SyncQuestions(id, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Add one bank question to a project
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param question body service.AddProjectQuestionRequest true "Bank question link"
// @Success 201 {object} model.ProjectQuestion
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id}/questions [post]
func (c *ProjectController) AddQuestion(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	var req service.AddProjectQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	pq, err := c.QuestionSetService.AddQuestion(id, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, pq)
}

// @Summary Add a custom question to a project
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param question body service.AddCustomQuestionRequest true "Custom question definition"
// @Success 201 {object} model.CustomQuestion
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id}/custom-questions [post]
func (c *ProjectController) AddCustomQuestion(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	var req service.AddCustomQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	cq, err := c.QuestionSetService.AddCustomQuestion(id, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, cq)
}

type PortalAccessRequest struct {
	Password string `json:"password"`
}

// @Summary Client portal access
// @Description Resolves a project by access code, checking the portal password when one is set
// @Tags portal
// @Accept json
// @Produce json
// @Param access_code path string true "Project access code"
// @Param credentials body PortalAccessRequest false "Portal password"
// @Success 200 {object} model.Project
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/project/{access_code}/portal [post]
func (c *ProjectController) PortalAccess(ctx *gin.Context) {
	project, err := c.ProjectService.GetProjectByAccessCode(ctx.Param("access_code"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	var req PortalAccessRequest
	_ = ctx.ShouldBindJSON(&req)
	if err := c.ProjectService.VerifyPortalPassword(project, req.Password); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

// @Summary Sync question selection by access code
// @Description Same reconciliation as the admin route, scoped by the project's access code and portal password
// @Tags portal
// @Accept json
// @Produce json
// @Param access_code path string true "Project access code"
// @Param selection body service.SyncQuestionsRequest true "Desired selection"
// @Success 200 {object} service.SyncResult
// @Failure 404 {object} util.ErrorResponse
// @Router /api/project/{access_code}/questions/bulk [post]
func (c *ProjectController) ClientSyncQuestions(ctx *gin.Context) {
	project, err := c.ProjectService.GetProjectByAccessCode(ctx.Param("access_code"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	if err := c.ProjectService.VerifyPortalPassword(project, ctx.GetHeader("X-Portal-Password")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	var req service.SyncQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.QuestionSetService.SyncQuestions(project.ID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
