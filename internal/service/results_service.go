package service

import (
	"math"
	"sort"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/repository"
)

// ResultsService computes per-question answer distributions over completed
// responses, plus the weighted numeric average for calculation-kind
// questions and any normative benchmarks on file.
type ResultsService struct {
	pqRepo        *repository.ProjectQuestionRepository
	responseRepo  *repository.ResponseRepository
	normativeRepo *repository.NormativeRepository
}

func NewResultsService(pqRepo *repository.ProjectQuestionRepository, responseRepo *repository.ResponseRepository, normativeRepo *repository.NormativeRepository) *ResultsService {
	return &ResultsService{pqRepo: pqRepo, responseRepo: responseRepo, normativeRepo: normativeRepo}
}

type DistributionEntry struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// NoResponseKey buckets answers submitted without text, e.g. a skipped
// open-text box.
const NoResponseKey = "No Response"

// QuestionResult is the aggregate for one question. Retired bank-linked
// questions still appear here; they only leave the live survey rendering.
type QuestionResult struct {
	QuestionID    uint   `json:"question_id"`
	Source        string `json:"source"`
	QuestionText  string `json:"question_text"`
	QuestionType  string `json:"question_type"`
	QuestionOrder int    `json:"question_order"`

	Total        int                          `json:"total"`
	Distribution map[string]DistributionEntry `json:"distribution"`

	// Weighted numeric average, only for calculation-kind questions with at
	// least one numeric answer.
	Average *float64 `json:"average,omitempty"`

	Benchmarks []model.NormativeData `json:"benchmarks,omitempty"`
}

// BuildDistribution counts answer texts and derives percentages rounded to
// one decimal. Zero answers yields an empty table, never a division error.
func BuildDistribution(values []string) (map[string]DistributionEntry, int) {
	total := len(values)
	dist := make(map[string]DistributionEntry)
	if total == 0 {
		return dist, 0
	}
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			v = NoResponseKey
		}
		counts[v]++
	}
	for key, count := range counts {
		dist[key] = DistributionEntry{
			Count:      count,
			Percentage: math.Round(float64(count)/float64(total)*1000) / 10,
		}
	}
	return dist, total
}

func answerTexts(answers []model.ResponseAnswer) []string {
	texts := make([]string, 0, len(answers))
	for _, a := range answers {
		if a.AnswerText != nil {
			texts = append(texts, *a.AnswerText)
		} else {
			texts = append(texts, "")
		}
	}
	return texts
}

// NumericAverage averages the numeric values of the given answers, skipping
// answers without one. Returns nil when nothing is averageable.
func NumericAverage(answers []model.ResponseAnswer) *float64 {
	var sum float64
	var n int
	for _, a := range answers {
		if a.AnswerNumeric != nil {
			sum += *a.AnswerNumeric
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(sum/float64(n)*100) / 100
	return &avg
}

// ProjectResults aggregates every question of the project, bank-linked and
// custom, ordered by question order.
func (s *ResultsService) ProjectResults(projectID uint) ([]QuestionResult, error) {
	pqs, err := s.pqRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	cqs, err := s.pqRepo.ListCustomByProject(projectID)
	if err != nil {
		return nil, err
	}

	results := make([]QuestionResult, 0, len(pqs)+len(cqs))
	for i := range pqs {
		r, err := s.aggregateProjectQuestion(&pqs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	for i := range cqs {
		r, err := s.aggregateCustomQuestion(&cqs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].QuestionOrder < results[j].QuestionOrder
	})
	return results, nil
}

func (s *ResultsService) aggregateProjectQuestion(pq *model.ProjectQuestion) (*QuestionResult, error) {
	answers, err := s.responseRepo.ListCompletedAnswers(pq.ID)
	if err != nil {
		return nil, err
	}
	rendered := RenderQuestion(pq)
	dist, total := BuildDistribution(answerTexts(answers))
	result := &QuestionResult{
		QuestionID:    pq.ID,
		Source:        "bank",
		QuestionText:  rendered.QuestionText,
		QuestionType:  rendered.QuestionType,
		QuestionOrder: pq.QuestionOrder,
		Total:         total,
		Distribution:  dist,
	}
	if mq := pq.MasterQuestion; mq != nil {
		if mq.HasSpecialCalculation {
			result.Average = NumericAverage(answers)
		}
		benchmarks, err := s.normativeRepo.ListByQuestion(mq.ID)
		if err != nil {
			return nil, err
		}
		result.Benchmarks = benchmarks
	}
	return result, nil
}

func (s *ResultsService) aggregateCustomQuestion(cq *model.CustomQuestion) (*QuestionResult, error) {
	answers, err := s.responseRepo.ListCompletedCustomAnswers(cq.ID)
	if err != nil {
		return nil, err
	}
	dist, total := BuildDistribution(answerTexts(answers))
	return &QuestionResult{
		QuestionID:    cq.ID,
		Source:        "custom",
		QuestionText:  cq.QuestionText,
		QuestionType:  cq.QuestionType,
		QuestionOrder: cq.QuestionOrder,
		Total:         total,
		Distribution:  dist,
	}, nil
}
