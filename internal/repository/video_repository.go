package repository

import (
	"swingshift_backend/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) ListMaster(activeOnly bool) ([]model.MasterVideo, error) {
	var videos []model.MasterVideo
	q := r.DB.Order("video_name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) FindMasterByID(id uint) (*model.MasterVideo, error) {
	var v model.MasterVideo
	err := r.DB.First(&v, id).Error
	return &v, err
}

func (r *VideoRepository) CreateMaster(v *model.MasterVideo) error {
	return r.DB.Create(v).Error
}

func (r *VideoRepository) UpdateMaster(v *model.MasterVideo) error {
	return r.DB.Save(v).Error
}

func (r *VideoRepository) ListSchedules(projectID uint) ([]model.ScheduleVideo, error) {
	var schedules []model.ScheduleVideo
	err := r.DB.Where("project_id = ?", projectID).
		Order("display_order").
		Find(&schedules).Error
	return schedules, err
}

func (r *VideoRepository) FindScheduleByID(id uint) (*model.ScheduleVideo, error) {
	var s model.ScheduleVideo
	err := r.DB.First(&s, id).Error
	return &s, err
}

// CreateSchedule appends a schedule video; a zero display order takes the
// next slot in the project.
func (r *VideoRepository) CreateSchedule(s *model.ScheduleVideo) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if s.DisplayOrder == 0 {
			var max int
			err := tx.Model(&model.ScheduleVideo{}).
				Where("project_id = ?", s.ProjectID).
				Select("COALESCE(MAX(display_order), 0)").Scan(&max).Error
			if err != nil {
				return err
			}
			s.DisplayOrder = max + 1
		}
		return tx.Create(s).Error
	})
}

func (r *VideoRepository) DeleteSchedule(id uint) error {
	return r.DB.Delete(&model.ScheduleVideo{}, id).Error
}

func (r *VideoRepository) ListRatings(scheduleID uint) ([]model.ScheduleRating, error) {
	var ratings []model.ScheduleRating
	err := r.DB.Where("schedule_id = ?", scheduleID).Find(&ratings).Error
	return ratings, err
}
