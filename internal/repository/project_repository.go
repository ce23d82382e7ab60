package repository

import (
	"swingshift_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(p *model.Project) error {
	return r.DB.Create(p).Error
}

func (r *ProjectRepository) FindByID(id uint) (*model.Project, error) {
	var p model.Project
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *ProjectRepository) FindByAccessCode(code string) (*model.Project, error) {
	var p model.Project
	err := r.DB.Where("access_code = ?", code).First(&p).Error
	return &p, err
}

func (r *ProjectRepository) List() ([]model.Project, error) {
	var ps []model.Project
	err := r.DB.Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProjectRepository) Update(p *model.Project) error {
	return r.DB.Omit("Questions", "CustomQuestions", "Responses", "Schedules").Save(p).Error
}

// ResponseCounts returns total and completed response counts for a project.
func (r *ProjectRepository) ResponseCounts(projectID uint) (total int64, complete int64, err error) {
	if err = r.DB.Model(&model.SurveyResponse{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.SurveyResponse{}).Where("project_id = ? AND is_complete = ?", projectID, true).Count(&complete).Error
	return
}

// QuestionCount counts bank-linked and custom questions together.
func (r *ProjectRepository) QuestionCount(projectID uint) (int64, error) {
	var pqCount, cqCount int64
	if err := r.DB.Model(&model.ProjectQuestion{}).Where("project_id = ?", projectID).Count(&pqCount).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&model.CustomQuestion{}).Where("project_id = ?", projectID).Count(&cqCount).Error; err != nil {
		return 0, err
	}
	return pqCount + cqCount, nil
}

func (r *ProjectRepository) ScheduleCount(projectID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ScheduleVideo{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
