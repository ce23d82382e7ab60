package model

// Question types supported by the survey engine.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeLikert5        = "likert_5"
	TypeYesNo          = "yes_no"
	TypeOpenText       = "open_text"
	TypeMultiSelect    = "multi_select"
)

// MasterQuestion is one entry in the question bank. Questions are never hard
// deleted; is_active=false removes them from listings while projects that
// already selected them keep working.
// swagger:model MasterQuestion
type MasterQuestion struct {
	BaseModel
	QuestionText   string `gorm:"type:text;not null" json:"question_text"`
	QuestionNumber int    `gorm:"not null;uniqueIndex" json:"question_number"`

	Category    string  `gorm:"size:100;not null;index" json:"category"`
	Subcategory *string `gorm:"size:100" json:"subcategory,omitempty"`

	QuestionType string `gorm:"size:50;not null" json:"question_type"`

	LikertLowLabel  *string `gorm:"size:100" json:"likert_low_label,omitempty"`
	LikertHighLabel *string `gorm:"size:100" json:"likert_high_label,omitempty"`

	// Some questions average their option values (years of service, hours of
	// sleep) instead of counting categories.
	HasSpecialCalculation bool    `gorm:"default:false" json:"has_special_calculation"`
	CalculationType       *string `gorm:"size:50" json:"calculation_type,omitempty"`

	IsActive bool `gorm:"default:true;index" json:"is_active"`

	ResponseOptions []ResponseOption `gorm:"foreignKey:QuestionID" json:"response_options"`
}

func (MasterQuestion) TableName() string {
	return "master_questions"
}

// ResponseOption is one answer choice of a bank question.
// swagger:model ResponseOption
type ResponseOption struct {
	BaseModel
	QuestionID uint `gorm:"index;not null" json:"-"`

	OptionText   string   `gorm:"size:500;not null" json:"option_text"`
	OptionCode   *string  `gorm:"size:10" json:"option_code,omitempty"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	DisplayOrder int      `gorm:"not null" json:"display_order"`

	// Midpoint of a bucketed range, e.g. "6 to 10 years" contributes 8 to an
	// average_years question.
	CalculationValue *float64 `json:"calculation_value,omitempty"`
}

func (ResponseOption) TableName() string {
	return "response_options"
}
