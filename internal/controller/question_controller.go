package controller

import (
	"strconv"

	"swingshift_backend/internal/service"
	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary List bank questions
// @Description Lists active question bank entries ordered by question number
// @Tags questions
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} model.MasterQuestion
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.QuestionService.ListQuestions(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Get a bank question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} model.MasterQuestion
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}
	question, err := c.QuestionService.GetQuestion(uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Create a bank question
// @Description Creates a question with its options, auto-numbering when no question number is given
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body service.CreateQuestionRequest true "Question definition"
// @Success 201 {object} model.MasterQuestion
// @Failure 400 {object} util.ErrorResponse
// @Router /api/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question, err := c.QuestionService.CreateQuestion(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Update a bank question
// @Description Partially updates a question's mutable fields; linked options are untouched
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Param question body service.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} model.MasterQuestion
// @Failure 404 {object} util.ErrorResponse
// @Router /api/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}
	var req service.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question, err := c.QuestionService.UpdateQuestion(uint(id), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary List question categories
// @Tags questions
// @Produce json
// @Success 200 {array} string
// @Router /api/questions/categories [get]
func (c *QuestionController) Categories(ctx *gin.Context) {
	categories, err := c.QuestionService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}
