package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyResponse is one respondent's session. The response code is the only
// handle a respondent holds; it is issued on start and required for every
// answer and for completion.
// swagger:model SurveyResponse
type SurveyResponse struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	ResponseCode string `gorm:"size:50;uniqueIndex;not null" json:"response_code"`

	IsComplete bool `gorm:"default:false;index" json:"is_complete"`

	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	LastActivity time.Time  `json:"last_activity"`

	// Hashed and truncated network fingerprint for abuse detection. The raw
	// address is never stored.
	UserAgent *string `gorm:"size:500" json:"-"`
	IPHash    *string `gorm:"size:64" json:"-"`

	Answers []ResponseAnswer `gorm:"foreignKey:ResponseID" json:"-"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

func (r *SurveyResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ResponseCode == "" {
		r.ResponseCode = uuid.New().String()
	}
	now := time.Now().UTC()
	if r.StartedAt.IsZero() {
		r.StartedAt = now
	}
	if r.LastActivity.IsZero() {
		r.LastActivity = now
	}
	return nil
}

// StringList is a JSON column holding the ordered selections of a
// multi_select answer.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// ResponseAnswer is one answer inside a session. It references exactly one of
// ProjectQuestionID / CustomQuestionID, and at most one row exists per
// (response, question) pair; resubmission overwrites in place.
// swagger:model ResponseAnswer
type ResponseAnswer struct {
	BaseModel
	ResponseID uint `gorm:"index;not null" json:"response_id"`

	ProjectQuestionID *uint `gorm:"index" json:"project_question_id,omitempty"`
	CustomQuestionID  *uint `gorm:"index" json:"custom_question_id,omitempty"`

	AnswerText    *string    `gorm:"type:text" json:"answer_text,omitempty"`
	AnswerCode    *string    `gorm:"size:10" json:"answer_code,omitempty"`
	AnswerNumeric *float64   `json:"answer_numeric,omitempty"`
	AnswerMulti   StringList `gorm:"type:json" json:"answer_multi,omitempty"`
}

func (ResponseAnswer) TableName() string {
	return "response_answers"
}
