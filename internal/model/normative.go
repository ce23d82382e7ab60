package model

// NormativeData is one benchmark row from the normative database of past
// surveys: the historical percentage of respondents choosing response_text
// for the given bank question.
// swagger:model NormativeData
type NormativeData struct {
	BaseModel
	MasterQuestionID uint `gorm:"index;not null" json:"master_question_id"`

	ResponseText string `gorm:"size:500;not null" json:"response_text"`

	AveragePercentage float64  `gorm:"not null" json:"average_percentage"`
	MinPercentage     *float64 `json:"min_percentage,omitempty"`
	MaxPercentage     *float64 `json:"max_percentage,omitempty"`
	StdDeviation      *float64 `json:"std_deviation,omitempty"`
	SampleSize        *int     `json:"sample_size,omitempty"`

	Industry    *string `gorm:"size:100" json:"industry,omitempty"`
	CompanySize *string `gorm:"size:50" json:"company_size,omitempty"`
}

func (NormativeData) TableName() string {
	return "normative_data"
}
