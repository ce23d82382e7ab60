package repository

import (
	"swingshift_backend/internal/model"

	"gorm.io/gorm"
)

type NormativeRepository struct {
	DB *gorm.DB
}

func NewNormativeRepository(db *gorm.DB) *NormativeRepository {
	return &NormativeRepository{DB: db}
}

func (r *NormativeRepository) ListByQuestion(masterQuestionID uint) ([]model.NormativeData, error) {
	var rows []model.NormativeData
	err := r.DB.Where("master_question_id = ?", masterQuestionID).Find(&rows).Error
	return rows, err
}

func (r *NormativeRepository) Create(n *model.NormativeData) error {
	return r.DB.Create(n).Error
}
