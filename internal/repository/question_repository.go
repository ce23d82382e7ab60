package repository

import (
	"swingshift_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) ListActive(category string) ([]model.MasterQuestion, error) {
	var qs []model.MasterQuestion
	query := r.DB.Preload("ResponseOptions", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order asc")
	}).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("question_number asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.MasterQuestion, error) {
	var q model.MasterQuestion
	err := r.DB.Preload("ResponseOptions", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order asc")
	}).First(&q, id).Error
	return &q, err
}

// ExistingIDs filters ids down to those present in the bank.
func (r *QuestionRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	if len(ids) == 0 {
		return map[uint]bool{}, nil
	}
	var found []uint
	err := r.DB.Model(&model.MasterQuestion{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	existing := make(map[uint]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// Create inserts a bank question together with its options. When the caller
// left QuestionNumber at zero, the next sequential number is claimed inside
// the same transaction so concurrent creations cannot collide.
func (r *QuestionRepository) Create(q *model.MasterQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if q.QuestionNumber == 0 {
			var max int
			if err := tx.Raw("SELECT COALESCE(MAX(question_number), 0) FROM master_questions FOR UPDATE").Scan(&max).Error; err != nil {
				return err
			}
			q.QuestionNumber = max + 1
		}
		return tx.Create(q).Error
	})
}

// Update persists the question's own columns without touching linked options.
func (r *QuestionRepository) Update(q *model.MasterQuestion) error {
	return r.DB.Omit("ResponseOptions").Save(q).Error
}

func (r *QuestionRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.MasterQuestion{}).
		Distinct().
		Where("category <> ''").
		Order("category asc").
		Pluck("category", &categories).Error
	return categories, err
}
