// Seeds the master question bank from configs/master_questions.json.
//
// Questions already present (matched by question_number) are skipped, so the
// script is safe to re-run after adding new entries to the JSON file.
//
// Usage: go run scripts/import_questions.go
package main

import (
	"encoding/json"
	"log"
	"os"

	"swingshift_backend/internal/config"
	"swingshift_backend/internal/model"
	"swingshift_backend/pkg/database"
	"swingshift_backend/pkg/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type optionDef struct {
	Text             string   `json:"text"`
	Code             *string  `json:"code"`
	NumericValue     *float64 `json:"numeric_value"`
	CalculationValue *float64 `json:"calculation_value"`
}

type questionDef struct {
	QuestionNumber int     `json:"question_number"`
	QuestionText   string  `json:"question_text"`
	Category       string  `json:"category"`
	Subcategory    *string `json:"subcategory"`
	QuestionType   string  `json:"question_type"`

	LikertLowLabel  *string `json:"likert_low_label"`
	LikertHighLabel *string `json:"likert_high_label"`

	HasSpecialCalculation bool    `json:"has_special_calculation"`
	CalculationType       *string `json:"calculation_type"`

	Options []optionDef `json:"options"`
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	raw, err := os.ReadFile("configs/master_questions.json")
	if err != nil {
		log.Fatalf("failed to read question definitions: %v", err)
	}

	var defs []questionDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		log.Fatalf("failed to parse question definitions: %v", err)
	}

	var imported, skipped int
	for _, def := range defs {
		var existing model.MasterQuestion
		err := db.Where("question_number = ?", def.QuestionNumber).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("lookup failed for question %d: %v", def.QuestionNumber, err)
		}

		q := model.MasterQuestion{
			QuestionText:          def.QuestionText,
			QuestionNumber:        def.QuestionNumber,
			Category:              def.Category,
			Subcategory:           def.Subcategory,
			QuestionType:          def.QuestionType,
			LikertLowLabel:        def.LikertLowLabel,
			LikertHighLabel:       def.LikertHighLabel,
			HasSpecialCalculation: def.HasSpecialCalculation,
			CalculationType:       def.CalculationType,
			IsActive:              true,
		}
		for i, opt := range def.Options {
			q.ResponseOptions = append(q.ResponseOptions, model.ResponseOption{
				OptionText:       opt.Text,
				OptionCode:       opt.Code,
				NumericValue:     opt.NumericValue,
				CalculationValue: opt.CalculationValue,
				DisplayOrder:     i + 1,
			})
		}
		if err := db.Create(&q).Error; err != nil {
			log.Fatalf("failed to import question %d: %v", def.QuestionNumber, err)
		}
		imported++
	}

	log.Printf("import complete: %d imported, %d skipped", imported, skipped)
}
