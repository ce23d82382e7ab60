package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/util"

	"gorm.io/gorm"
)

// ResponseStore is the persistence surface the survey flow needs. The
// concrete implementation is repository.ResponseRepository.
type ResponseStore interface {
	ProjectByAccessCode(code string) (*model.Project, error)
	CreateResponse(resp *model.SurveyResponse) error
	ResponseByCode(projectID uint, code string) (*model.SurveyResponse, error)
	SaveAnswer(resp *model.SurveyResponse, ans *model.ResponseAnswer) error
	CompleteResponse(resp *model.SurveyResponse) error
	SaveRating(rating *model.ScheduleRating) error
}

// SurveyService drives the respondent session lifecycle: start, answer
// upserts, completion, and schedule ratings. Everything is keyed by the
// project access code plus the opaque response code issued at start.
type SurveyService struct {
	store ResponseStore
}

func NewSurveyService(store ResponseStore) *SurveyService {
	return &SurveyService{store: store}
}

// HashIP reduces a network address to a short one-way fingerprint. The raw
// address is never persisted.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *SurveyService) activeProject(accessCode string) (*model.Project, error) {
	p, err := s.store.ProjectByAccessCode(accessCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Status != model.StatusActive {
		return nil, util.ErrSurveyNotActive
	}
	return p, nil
}

// StartResponse opens a session against an active project and issues its
// response code.
func (s *SurveyService) StartResponse(accessCode, clientIP, userAgent string) (*model.SurveyResponse, error) {
	p, err := s.activeProject(accessCode)
	if err != nil {
		return nil, err
	}
	resp := &model.SurveyResponse{ProjectID: p.ID}
	if clientIP != "" {
		h := HashIP(clientIP)
		resp.IPHash = &h
	}
	if userAgent != "" {
		if len(userAgent) > 500 {
			userAgent = userAgent[:500]
		}
		resp.UserAgent = &userAgent
	}
	if err := s.store.CreateResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type SubmitAnswerRequest struct {
	ResponseCode string `json:"response_code" binding:"required"`

	ProjectQuestionID *uint `json:"project_question_id"`
	CustomQuestionID  *uint `json:"custom_question_id"`

	AnswerText    *string          `json:"answer_text"`
	AnswerCode    *string          `json:"answer_code"`
	AnswerNumeric *float64         `json:"answer_numeric"`
	AnswerMulti   model.StringList `json:"answer_multi"`
}

// SubmitAnswer records one answer, overwriting any earlier answer to the
// same question in the same session.
func (s *SurveyService) SubmitAnswer(accessCode string, req *SubmitAnswerRequest) (*model.ResponseAnswer, error) {
	if (req.ProjectQuestionID == nil) == (req.CustomQuestionID == nil) {
		return nil, util.ErrAnswerTargetAmbiguous
	}
	p, err := s.activeProject(accessCode)
	if err != nil {
		return nil, err
	}
	resp, err := s.findResponse(p.ID, req.ResponseCode)
	if err != nil {
		return nil, err
	}
	if resp.IsComplete {
		return nil, util.ErrResponseComplete
	}
	ans := &model.ResponseAnswer{
		ResponseID:        resp.ID,
		ProjectQuestionID: req.ProjectQuestionID,
		CustomQuestionID:  req.CustomQuestionID,
		AnswerText:        req.AnswerText,
		AnswerCode:        req.AnswerCode,
		AnswerNumeric:     req.AnswerNumeric,
		AnswerMulti:       req.AnswerMulti,
	}
	if err := s.store.SaveAnswer(resp, ans); err != nil {
		return nil, err
	}
	return ans, nil
}

// CompleteResponse finishes a session. Completing an already-completed
// session succeeds without moving the completion time.
func (s *SurveyService) CompleteResponse(accessCode, responseCode string) (*model.SurveyResponse, error) {
	p, err := s.activeProject(accessCode)
	if err != nil {
		return nil, err
	}
	resp, err := s.findResponse(p.ID, responseCode)
	if err != nil {
		return nil, err
	}
	if err := s.store.CompleteResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type RateScheduleRequest struct {
	ResponseCode string `json:"response_code" binding:"required"`
	ScheduleID   uint   `json:"schedule_id" binding:"required"`

	Rating *int `json:"rating" binding:"omitempty,min=1,max=5"`
	Rank   *int `json:"rank" binding:"omitempty,min=1"`

	Comments *string `json:"comments"`

	VideoWatched         bool `json:"video_watched"`
	WatchDurationSeconds *int `json:"watch_duration_seconds"`
}

// RateSchedule records a schedule video rating, overwriting an earlier rating
// of the same schedule in the same session.
func (s *SurveyService) RateSchedule(accessCode string, req *RateScheduleRequest) (*model.ScheduleRating, error) {
	p, err := s.activeProject(accessCode)
	if err != nil {
		return nil, err
	}
	resp, err := s.findResponse(p.ID, req.ResponseCode)
	if err != nil {
		return nil, err
	}
	rating := &model.ScheduleRating{
		ResponseID:           resp.ID,
		ScheduleID:           req.ScheduleID,
		Rating:               req.Rating,
		Rank:                 req.Rank,
		Comments:             req.Comments,
		VideoWatched:         req.VideoWatched,
		WatchDurationSeconds: req.WatchDurationSeconds,
	}
	if err := s.store.SaveRating(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *SurveyService) findResponse(projectID uint, code string) (*model.SurveyResponse, error) {
	resp, err := s.store.ResponseByCode(projectID, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResponseNotFound
	}
	return resp, err
}
