package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project lifecycle states.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusClosed    = "closed"
	StatusCompleted = "completed"
)

// Project is one client survey engagement. The access code is the public
// handle used by respondents and by the no-login client portal.
// swagger:model Project
type Project struct {
	BaseModel
	ProjectName string `gorm:"size:200;not null" json:"project_name"`
	CompanyName string `gorm:"size:200;not null" json:"company_name"`

	AccessCode     string  `gorm:"size:50;uniqueIndex;not null" json:"access_code"`
	ClientPassword *string `gorm:"size:200" json:"-"`

	Status string `gorm:"size:50;default:'draft'" json:"status"`

	IsAnonymous      bool `gorm:"default:true" json:"is_anonymous"`
	ShowProgress     bool `gorm:"default:true" json:"show_progress"`
	RandomizeOptions bool `gorm:"default:false" json:"randomize_options"`

	EmployeeIDLabel   string `gorm:"size:100;default:'Employee Number'" json:"employee_id_label"`
	RequireEmployeeID bool   `gorm:"default:false" json:"require_employee_id"`

	OpenedAt *time.Time `json:"opened_at,omitempty"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	Questions       []ProjectQuestion `gorm:"foreignKey:ProjectID" json:"-"`
	CustomQuestions []CustomQuestion  `gorm:"foreignKey:ProjectID" json:"-"`
	Responses       []SurveyResponse  `gorm:"foreignKey:ProjectID" json:"-"`
	Schedules       []ScheduleVideo   `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.AccessCode == "" {
		p.AccessCode = NewAccessCode()
	}
	return nil
}

// NewAccessCode returns a short uppercase token for anonymous survey access.
func NewAccessCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// OptionOverride replaces one bank option for a single project. Overridden
// options carry text and code only; the bank option's numeric semantics do
// not apply to them.
type OptionOverride struct {
	Text string `json:"text"`
	Code string `json:"code"`
}

// OptionOverrideList is stored as a JSON column and parsed exactly once at
// the database boundary.
type OptionOverrideList []OptionOverride

func (l OptionOverrideList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *OptionOverrideList) Scan(value interface{}) error {
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
		return fmt.Errorf("unsupported option override column type %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// ProjectQuestion links a bank question into a project. A bank question
// appears at most once per project; question_order numbers are merged with
// custom questions into one counter scope and are never reused after a
// removal.
// swagger:model ProjectQuestion
type ProjectQuestion struct {
	BaseModel
	ProjectID        uint `gorm:"index:idx_project_master,unique;not null" json:"project_id"`
	MasterQuestionID uint `gorm:"index:idx_project_master,unique;not null" json:"master_question_id"`

	QuestionOrder int `gorm:"not null" json:"question_order"`

	// Replaces the master question text for this project when set.
	CustomText *string `gorm:"type:text" json:"custom_text,omitempty"`

	// Replaces the master question options entirely when non-empty.
	CustomOptions OptionOverrideList `gorm:"type:json" json:"custom_options,omitempty"`

	// Marks the question as a segmentation axis for breakout analysis.
	IsBreakout bool `gorm:"default:false" json:"is_breakout"`

	// Set when the question was deselected but kept because answers reference
	// it. Retired rows stay out of survey rendering; their answers remain in
	// results. Re-selecting the question clears the flag.
	IsRetired bool `gorm:"default:false" json:"is_retired"`

	MasterQuestion *MasterQuestion `gorm:"foreignKey:MasterQuestionID" json:"-"`
}

func (ProjectQuestion) TableName() string {
	return "project_questions"
}

// CustomQuestion is authored for one project and never enters the bank.
// swagger:model CustomQuestion
type CustomQuestion struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	QuestionOrder int    `gorm:"not null" json:"question_order"`
	QuestionType  string `gorm:"size:50;not null" json:"question_type"`

	LikertLowLabel  *string `gorm:"size:100" json:"likert_low_label,omitempty"`
	LikertHighLabel *string `gorm:"size:100" json:"likert_high_label,omitempty"`

	IsBreakout bool `gorm:"default:false" json:"is_breakout"`

	ResponseOptions []CustomResponseOption `gorm:"foreignKey:CustomQuestionID" json:"response_options"`
}

func (CustomQuestion) TableName() string {
	return "custom_questions"
}

// swagger:model CustomResponseOption
type CustomResponseOption struct {
	BaseModel
	CustomQuestionID uint `gorm:"index;not null" json:"-"`

	OptionText   string   `gorm:"size:500;not null" json:"option_text"`
	OptionCode   *string  `gorm:"size:10" json:"option_code,omitempty"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	DisplayOrder int      `gorm:"not null" json:"display_order"`
}

func (CustomResponseOption) TableName() string {
	return "custom_response_options"
}
