package repository

import (
	"swingshift_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectQuestionRepository struct {
	DB *gorm.DB
}

func NewProjectQuestionRepository(db *gorm.DB) *ProjectQuestionRepository {
	return &ProjectQuestionRepository{DB: db}
}

// ListByProject returns the project's bank-linked questions with their master
// definitions and options loaded, ordered by question_order.
func (r *ProjectQuestionRepository) ListByProject(projectID uint) ([]model.ProjectQuestion, error) {
	var pqs []model.ProjectQuestion
	err := r.DB.Where("project_id = ?", projectID).
		Preload("MasterQuestion").
		Preload("MasterQuestion.ResponseOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("response_options.display_order")
		}).
		Order("question_order").
		Find(&pqs).Error
	return pqs, err
}

func (r *ProjectQuestionRepository) ListCustomByProject(projectID uint) ([]model.CustomQuestion, error) {
	var cqs []model.CustomQuestion
	err := r.DB.Where("project_id = ?", projectID).
		Preload("ResponseOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("custom_response_options.display_order")
		}).
		Order("question_order").
		Find(&cqs).Error
	return cqs, err
}

func (r *ProjectQuestionRepository) FindByID(id uint) (*model.ProjectQuestion, error) {
	var pq model.ProjectQuestion
	err := r.DB.Preload("MasterQuestion").First(&pq, id).Error
	return &pq, err
}

// AnsweredProjectQuestionIDs reports which of the project's bank-linked
// questions have at least one recorded answer. Those links must not be
// removed by a selection sync.
func (r *ProjectQuestionRepository) AnsweredProjectQuestionIDs(projectID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.DB.Model(&model.ResponseAnswer{}).
		Distinct("response_answers.project_question_id").
		Joins("JOIN project_questions ON project_questions.id = response_answers.project_question_id").
		Where("project_questions.project_id = ? AND response_answers.project_question_id IS NOT NULL", projectID).
		Pluck("response_answers.project_question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	answered := make(map[uint]bool, len(ids))
	for _, id := range ids {
		answered[id] = true
	}
	return answered, nil
}

// MaxOrder returns the highest question_order across both bank-linked and
// custom questions of the project. Orders form one shared counter scope.
func (r *ProjectQuestionRepository) MaxOrder(projectID uint) (int, error) {
	return maxOrderTx(r.DB, projectID)
}

func maxOrderTx(tx *gorm.DB, projectID uint) (int, error) {
	var pqMax, cqMax int
	err := tx.Model(&model.ProjectQuestion{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(question_order), 0)").Scan(&pqMax).Error
	if err != nil {
		return 0, err
	}
	err = tx.Model(&model.CustomQuestion{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(question_order), 0)").Scan(&cqMax).Error
	if err != nil {
		return 0, err
	}
	if cqMax > pqMax {
		return cqMax, nil
	}
	return pqMax, nil
}

// ApplySelection commits one reconciliation pass atomically: option override
// updates on retained links, removal of deselected links, and insertion of
// new links. Removals are re-guarded inside the transaction so a question
// answered between planning and commit is never dropped. Removed rows are
// deleted outright so the (project, master question) pair can be re-added
// later without tripping the unique index.
func (r *ProjectQuestionRepository) ApplySelection(adds []model.ProjectQuestion, updates map[uint]model.OptionOverrideList, removeIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for id, overrides := range updates {
			err := tx.Model(&model.ProjectQuestion{}).
				Where("id = ?", id).
				Updates(map[string]interface{}{
					"custom_options": overrides,
					"is_retired":     false,
				}).Error
			if err != nil {
				return err
			}
		}
		if len(removeIDs) > 0 {
			err := tx.Unscoped().
				Where("id IN ? AND NOT EXISTS (SELECT 1 FROM response_answers WHERE response_answers.project_question_id = project_questions.id)", removeIDs).
				Delete(&model.ProjectQuestion{}).Error
			if err != nil {
				return err
			}
			// Rows the guard kept alive are retired instead of deleted.
			err = tx.Model(&model.ProjectQuestion{}).
				Where("id IN ?", removeIDs).
				Update("is_retired", true).Error
			if err != nil {
				return err
			}
		}
		for i := range adds {
			if err := tx.Create(&adds[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateProjectQuestion appends one bank question to a project. A zero order
// is assigned the next slot in the shared counter.
func (r *ProjectQuestionRepository) CreateProjectQuestion(pq *model.ProjectQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if pq.QuestionOrder == 0 {
			max, err := maxOrderTx(tx, pq.ProjectID)
			if err != nil {
				return err
			}
			pq.QuestionOrder = max + 1
		}
		return tx.Create(pq).Error
	})
}

func (r *ProjectQuestionRepository) CreateCustomQuestion(cq *model.CustomQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if cq.QuestionOrder == 0 {
			max, err := maxOrderTx(tx, cq.ProjectID)
			if err != nil {
				return err
			}
			cq.QuestionOrder = max + 1
		}
		return tx.Create(cq).Error
	})
}
