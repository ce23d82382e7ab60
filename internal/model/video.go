package model

// MasterVideo is one entry in the reusable schedule video library. Projects
// copy library entries into their own ScheduleVideo list.
// swagger:model MasterVideo
type MasterVideo struct {
	BaseModel
	VideoName        string `gorm:"size:200;not null" json:"video_name"`
	VideoDescription string `gorm:"type:text;not null" json:"video_description"`
	YoutubeURL       string `gorm:"size:500;not null" json:"youtube_url"`
	VideoID          string `gorm:"size:50;not null" json:"video_id"`

	// Comma separated, e.g. "Manufacturing,12-hour,Rotating".
	Tags            *string `gorm:"size:500" json:"tags,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`

	IsActive bool `gorm:"default:true;index" json:"is_active"`
}

func (MasterVideo) TableName() string {
	return "master_videos"
}

// ScheduleVideo is a schedule video attached to one project, either copied
// from the master library or uploaded directly.
// swagger:model ScheduleVideo
type ScheduleVideo struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	ScheduleName        string  `gorm:"size:200;not null" json:"schedule_name"`
	ScheduleDescription *string `gorm:"type:text" json:"schedule_description,omitempty"`
	DisplayOrder        int     `gorm:"not null" json:"display_order"`

	VideoFilename    string  `gorm:"size:500;not null" json:"video_filename"`
	OriginalFilename *string `gorm:"size:500" json:"original_filename,omitempty"`
	VideoURL         *string `gorm:"size:1000" json:"video_url,omitempty"`

	DurationSeconds *int   `json:"duration_seconds,omitempty"`
	FileSizeBytes   *int64 `json:"file_size_bytes,omitempty"`

	Ratings []ScheduleRating `gorm:"foreignKey:ScheduleID" json:"-"`
}

func (ScheduleVideo) TableName() string {
	return "schedule_videos"
}

// ScheduleRating is one respondent's rating of one schedule video. At most
// one row exists per (response, schedule); resubmission overwrites.
// swagger:model ScheduleRating
type ScheduleRating struct {
	BaseModel
	ResponseID uint `gorm:"index:idx_response_schedule,unique;not null" json:"response_id"`
	ScheduleID uint `gorm:"index:idx_response_schedule,unique;not null" json:"schedule_id"`

	Rating *int `json:"rating,omitempty"` // 1-5 preference
	Rank   *int `json:"rank,omitempty"`   // 1-6, 1 = most preferred

	Comments *string `gorm:"type:text" json:"comments,omitempty"`

	VideoWatched         bool `gorm:"default:false" json:"video_watched"`
	WatchDurationSeconds *int `json:"watch_duration_seconds,omitempty"`
}

func (ScheduleRating) TableName() string {
	return "schedule_ratings"
}
