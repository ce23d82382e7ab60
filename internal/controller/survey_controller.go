package controller

import (
	"swingshift_backend/internal/model"
	"swingshift_backend/internal/service"
	"swingshift_backend/internal/util"
	"swingshift_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService      *service.SurveyService
	ProjectService     *service.ProjectService
	QuestionSetService *service.QuestionSetService
	VideoService       *service.VideoService
}

func NewSurveyController(surveyService *service.SurveyService, projectService *service.ProjectService, questionSetService *service.QuestionSetService, videoService *service.VideoService) *SurveyController {
	return &SurveyController{
		SurveyService:      surveyService,
		ProjectService:     projectService,
		QuestionSetService: questionSetService,
		VideoService:       videoService,
	}
}

// @Summary Get survey for taking
// @Description Returns the active survey's settings, questions, and schedule videos
// @Tags survey
// @Produce json
// @Param access_code path string true "Project access code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/survey/{access_code} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	project, err := c.ProjectService.GetProjectByAccessCode(ctx.Param("access_code"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	if project.Status != model.StatusActive {
		handleServiceError(ctx, util.ErrSurveyNotActive)
		return
	}
	questions, err := c.QuestionSetService.ListRendered(project.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	schedules, err := c.VideoService.ListSchedules(project.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"project":   project,
		"questions": questions,
		"schedules": schedules,
	})
}

// @Summary Start a survey response
// @Description Opens a respondent session and issues its response code
// @Tags survey
// @Produce json
// @Param access_code path string true "Project access code"
// @Success 201 {object} model.SurveyResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/survey/{access_code}/start [post]
func (c *SurveyController) StartResponse(ctx *gin.Context) {
	resp, err := c.SurveyService.StartResponse(ctx.Param("access_code"), ctx.ClientIP(), ctx.Request.UserAgent())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, resp)
}

// @Summary Submit an answer
// @Description Upserts the session's answer to one question; resubmission overwrites
// @Tags survey
// @Accept json
// @Produce json
// @Param access_code path string true "Project access code"
// @Param answer body service.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} model.ResponseAnswer
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/survey/{access_code}/answer [post]
func (c *SurveyController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	answer, err := c.SurveyService.SubmitAnswer(ctx.Param("access_code"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	monitoring.AnswersRecorded.Inc()
	util.Success(ctx, answer)
}

type CompleteRequest struct {
	ResponseCode string `json:"response_code" binding:"required"`
}

// @Summary Complete a survey response
// @Description Marks the session complete; repeating the call is harmless
// @Tags survey
// @Accept json
// @Produce json
// @Param access_code path string true "Project access code"
// @Param completion body CompleteRequest true "Response code"
// @Success 200 {object} model.SurveyResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/survey/{access_code}/complete [post]
func (c *SurveyController) CompleteResponse(ctx *gin.Context) {
	var req CompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	resp, err := c.SurveyService.CompleteResponse(ctx.Param("access_code"), req.ResponseCode)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	monitoring.ResponsesCompleted.Inc()
	util.Success(ctx, resp)
}

// @Summary Rate a schedule video
// @Description Upserts the session's rating for one schedule video
// @Tags survey
// @Accept json
// @Produce json
// @Param access_code path string true "Project access code"
// @Param rating body service.RateScheduleRequest true "Rating payload"
// @Success 200 {object} model.ScheduleRating
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/survey/{access_code}/rate [post]
func (c *SurveyController) RateSchedule(ctx *gin.Context) {
	var req service.RateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	rating, err := c.SurveyService.RateSchedule(ctx.Param("access_code"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, rating)
}
