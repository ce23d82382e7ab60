package service

import (
	"errors"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/repository"
	"swingshift_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type CreateQuestionRequest struct {
	QuestionText   string  `json:"question_text" binding:"required"`
	QuestionNumber int     `json:"question_number"`
	Category       string  `json:"category" binding:"required"`
	Subcategory    *string `json:"subcategory"`
	QuestionType   string  `json:"question_type" binding:"required,oneof=multiple_choice likert_5 yes_no open_text multi_select"`

	LikertLowLabel  *string `json:"likert_low_label"`
	LikertHighLabel *string `json:"likert_high_label"`

	HasSpecialCalculation bool    `json:"has_special_calculation"`
	CalculationType       *string `json:"calculation_type"`

	ResponseOptions []OptionInput `json:"response_options"`
}

type OptionInput struct {
	OptionText       string   `json:"option_text" binding:"required"`
	OptionCode       *string  `json:"option_code"`
	NumericValue     *float64 `json:"numeric_value"`
	CalculationValue *float64 `json:"calculation_value"`
}

type UpdateQuestionRequest struct {
	QuestionText *string `json:"question_text"`
	Category     *string `json:"category"`
	Subcategory  *string `json:"subcategory"`

	LikertLowLabel  *string `json:"likert_low_label"`
	LikertHighLabel *string `json:"likert_high_label"`

	IsActive *bool `json:"is_active"`
}

// ListQuestions returns active bank questions, optionally filtered by
// category.
func (s *QuestionService) ListQuestions(category string) ([]model.MasterQuestion, error) {
	return s.questionRepo.ListActive(category)
}

func (s *QuestionService) GetQuestion(id uint) (*model.MasterQuestion, error) {
	q, err := s.questionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return q, err
}

// CreateQuestion adds a bank question. A zero question number gets the next
// free number; option display order follows input order.
func (s *QuestionService) CreateQuestion(req *CreateQuestionRequest) (*model.MasterQuestion, error) {
	q := &model.MasterQuestion{
		QuestionText:          req.QuestionText,
		QuestionNumber:        req.QuestionNumber,
		Category:              req.Category,
		Subcategory:           req.Subcategory,
		QuestionType:          req.QuestionType,
		LikertLowLabel:        req.LikertLowLabel,
		LikertHighLabel:       req.LikertHighLabel,
		HasSpecialCalculation: req.HasSpecialCalculation,
		CalculationType:       req.CalculationType,
		IsActive:              true,
	}
	for i, opt := range req.ResponseOptions {
		q.ResponseOptions = append(q.ResponseOptions, model.ResponseOption{
			OptionText:       opt.OptionText,
			OptionCode:       opt.OptionCode,
			NumericValue:     opt.NumericValue,
			CalculationValue: opt.CalculationValue,
			DisplayOrder:     i + 1,
		})
	}
	if err := s.questionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuestion applies a partial update. Question number and type are
// immutable once created; deactivation hides the question from listings
// without touching projects that already use it.
func (s *QuestionService) UpdateQuestion(id uint, req *UpdateQuestionRequest) (*model.MasterQuestion, error) {
	q, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}
	if req.QuestionText != nil {
		q.QuestionText = *req.QuestionText
	}
	if req.Category != nil {
		q.Category = *req.Category
	}
	if req.Subcategory != nil {
		q.Subcategory = req.Subcategory
	}
	if req.LikertLowLabel != nil {
		q.LikertLowLabel = req.LikertLowLabel
	}
	if req.LikertHighLabel != nil {
		q.LikertHighLabel = req.LikertHighLabel
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	if err := s.questionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Categories() ([]string, error) {
	return s.questionRepo.Categories()
}
