package repository

import (
	"time"

	"swingshift_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) ProjectByAccessCode(code string) (*model.Project, error) {
	var p model.Project
	err := r.DB.Where("access_code = ?", code).First(&p).Error
	return &p, err
}

func (r *ResponseRepository) CreateResponse(resp *model.SurveyResponse) error {
	return r.DB.Create(resp).Error
}

// ResponseByCode resolves a session within one project. Codes are globally
// unique but the project scope keeps a leaked code from crossing surveys.
func (r *ResponseRepository) ResponseByCode(projectID uint, code string) (*model.SurveyResponse, error) {
	var resp model.SurveyResponse
	err := r.DB.Where("project_id = ? AND response_code = ?", projectID, code).First(&resp).Error
	return &resp, err
}

// SaveAnswer upserts by the answer's natural key (response, question) and
// bumps the session's last activity stamp in the same transaction.
func (r *ResponseRepository) SaveAnswer(resp *model.SurveyResponse, ans *model.ResponseAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.ResponseAnswer
		q := tx.Where("response_id = ?", ans.ResponseID)
		if ans.ProjectQuestionID != nil {
			q = q.Where("project_question_id = ?", *ans.ProjectQuestionID)
		} else {
			q = q.Where("custom_question_id = ?", *ans.CustomQuestionID)
		}
		err := q.First(&existing).Error
		switch {
		case err == nil:
			existing.AnswerText = ans.AnswerText
			existing.AnswerCode = ans.AnswerCode
			existing.AnswerNumeric = ans.AnswerNumeric
			existing.AnswerMulti = ans.AnswerMulti
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*ans = existing
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(ans).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return tx.Model(resp).Update("last_activity", time.Now().UTC()).Error
	})
}

// CompleteResponse marks a session finished. Completing twice keeps the
// original completion time.
func (r *ResponseRepository) CompleteResponse(resp *model.SurveyResponse) error {
	if resp.IsComplete {
		return nil
	}
	now := time.Now().UTC()
	resp.IsComplete = true
	resp.CompletedAt = &now
	resp.LastActivity = now
	return r.DB.Model(resp).Updates(map[string]interface{}{
		"is_complete":   true,
		"completed_at":  now,
		"last_activity": now,
	}).Error
}

// SaveRating upserts a schedule rating by its (response, schedule) key.
func (r *ResponseRepository) SaveRating(rating *model.ScheduleRating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.ScheduleRating
		err := tx.Where("response_id = ? AND schedule_id = ?", rating.ResponseID, rating.ScheduleID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.Rating = rating.Rating
			existing.Rank = rating.Rank
			existing.Comments = rating.Comments
			existing.VideoWatched = rating.VideoWatched
			existing.WatchDurationSeconds = rating.WatchDurationSeconds
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*rating = existing
			return nil
		case err == gorm.ErrRecordNotFound:
			return tx.Create(rating).Error
		default:
			return err
		}
	})
}

// ListCompletedAnswers returns answers to one bank-linked question from
// completed sessions only.
func (r *ResponseRepository) ListCompletedAnswers(projectQuestionID uint) ([]model.ResponseAnswer, error) {
	var answers []model.ResponseAnswer
	err := r.DB.Joins("JOIN survey_responses ON survey_responses.id = response_answers.response_id").
		Where("response_answers.project_question_id = ? AND survey_responses.is_complete = ?", projectQuestionID, true).
		Find(&answers).Error
	return answers, err
}

func (r *ResponseRepository) ListCompletedCustomAnswers(customQuestionID uint) ([]model.ResponseAnswer, error) {
	var answers []model.ResponseAnswer
	err := r.DB.Joins("JOIN survey_responses ON survey_responses.id = response_answers.response_id").
		Where("response_answers.custom_question_id = ? AND survey_responses.is_complete = ?", customQuestionID, true).
		Find(&answers).Error
	return answers, err
}

// ListCompletedResponses returns the project's finished sessions in
// completion order, answers preloaded.
func (r *ResponseRepository) ListCompletedResponses(projectID uint) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.DB.Where("project_id = ? AND is_complete = ?", projectID, true).
		Preload("Answers").
		Order("completed_at").
		Find(&responses).Error
	return responses, err
}
