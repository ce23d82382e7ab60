package service

import (
	"fmt"
	"sort"
	"strings"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/repository"
)

// ExportService flattens a project's completed responses into tabular rows
// for CSV download.
type ExportService struct {
	projectRepo  *repository.ProjectRepository
	pqRepo       *repository.ProjectQuestionRepository
	responseRepo *repository.ResponseRepository
}

func NewExportService(projectRepo *repository.ProjectRepository, pqRepo *repository.ProjectQuestionRepository, responseRepo *repository.ResponseRepository) *ExportService {
	return &ExportService{projectRepo: projectRepo, pqRepo: pqRepo, responseRepo: responseRepo}
}

// ExportColumn maps one spreadsheet column to the question it reads from.
type ExportColumn struct {
	Header     string
	Source     string // "bank" or "custom"
	QuestionID uint
}

// BuildExport produces the header row plus one row per completed response.
// Row identity is a stable prefix of the opaque response code, and cells hold
// the response's answer text for the column's question, empty if unanswered.
func BuildExport(columns []ExportColumn, responses []model.SurveyResponse) [][]string {
	header := make([]string, 0, len(columns)+2)
	header = append(header, "Response ID", "Completed")
	for _, col := range columns {
		header = append(header, col.Header)
	}
	rows := [][]string{header}

	for _, resp := range responses {
		if !resp.IsComplete {
			continue
		}
		row := make([]string, 0, len(columns)+2)
		row = append(row, responseExportID(resp.ResponseCode))
		if resp.CompletedAt != nil {
			row = append(row, resp.CompletedAt.Format("2006-01-02 15:04"))
		} else {
			row = append(row, "")
		}
		for _, col := range columns {
			row = append(row, answerCell(resp.Answers, col))
		}
		rows = append(rows, row)
	}
	return rows
}

func responseExportID(code string) string {
	if len(code) > 8 {
		return code[:8]
	}
	return code
}

func answerCell(answers []model.ResponseAnswer, col ExportColumn) string {
	for _, a := range answers {
		switch col.Source {
		case "bank":
			if a.ProjectQuestionID == nil || *a.ProjectQuestionID != col.QuestionID {
				continue
			}
		case "custom":
			if a.CustomQuestionID == nil || *a.CustomQuestionID != col.QuestionID {
				continue
			}
		}
		if a.AnswerText != nil {
			return *a.AnswerText
		}
		return ""
	}
	return ""
}

// ExportColumns builds the column list for a project in merged question
// order. Retired questions keep their column since their answers remain part
// of the dataset.
func (s *ExportService) ExportColumns(projectID uint) ([]ExportColumn, error) {
	pqs, err := s.pqRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	cqs, err := s.pqRepo.ListCustomByProject(projectID)
	if err != nil {
		return nil, err
	}

	type orderedColumn struct {
		order int
		col   ExportColumn
	}
	ordered := make([]orderedColumn, 0, len(pqs)+len(cqs))
	for _, pq := range pqs {
		ordered = append(ordered, orderedColumn{
			order: pq.QuestionOrder,
			col:   ExportColumn{Header: fmt.Sprintf("Q%d", pq.QuestionOrder), Source: "bank", QuestionID: pq.ID},
		})
	}
	for _, cq := range cqs {
		ordered = append(ordered, orderedColumn{
			order: cq.QuestionOrder,
			col:   ExportColumn{Header: fmt.Sprintf("Q%d", cq.QuestionOrder), Source: "custom", QuestionID: cq.ID},
		})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	columns := make([]ExportColumn, 0, len(ordered))
	for _, oc := range ordered {
		columns = append(columns, oc.col)
	}
	return columns, nil
}

// ExportCSV assembles the full export for a project and names the file after
// the client company.
func (s *ExportService) ExportCSV(projectID uint) (rows [][]string, filename string, err error) {
	p, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, "", err
	}
	columns, err := s.ExportColumns(projectID)
	if err != nil {
		return nil, "", err
	}
	responses, err := s.responseRepo.ListCompletedResponses(projectID)
	if err != nil {
		return nil, "", err
	}
	return BuildExport(columns, responses), exportFilename(p.CompanyName), nil
}

func exportFilename(company string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, company)
	if safe == "" {
		safe = "project"
	}
	return safe + "_survey_data.csv"
}
