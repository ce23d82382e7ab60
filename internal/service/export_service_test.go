package service

import (
	"testing"
	"time"

	"swingshift_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportResponse(code string, complete bool, answers []model.ResponseAnswer) model.SurveyResponse {
	resp := model.SurveyResponse{
		ResponseCode: code,
		IsComplete:   complete,
		Answers:      answers,
	}
	if complete {
		done := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
		resp.CompletedAt = &done
	}
	return resp
}

func textAnswer(projectQuestionID uint, text string) model.ResponseAnswer {
	return model.ResponseAnswer{ProjectQuestionID: &projectQuestionID, AnswerText: &text}
}

func TestBuildExportRowsAndHeaders(t *testing.T) {
	columns := []ExportColumn{
		{Header: "Q1", Source: "bank", QuestionID: 10},
		{Header: "Q2", Source: "bank", QuestionID: 11},
	}
	responses := []model.SurveyResponse{
		exportResponse("aabbccdd-1111-2222-3333-444455556666", true, []model.ResponseAnswer{
			textAnswer(10, "Yes"),
			textAnswer(11, "Night Shift"),
		}),
		exportResponse("99887766-aaaa-bbbb-cccc-ddddeeeeffff", true, []model.ResponseAnswer{
			textAnswer(10, "No"),
		}),
	}

	rows := BuildExport(columns, responses)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Response ID", "Completed", "Q1", "Q2"}, rows[0])
	assert.Equal(t, []string{"aabbccdd", "2026-03-10 14:30", "Yes", "Night Shift"}, rows[1])
	assert.Equal(t, []string{"99887766", "2026-03-10 14:30", "No", ""}, rows[2])
}

func TestBuildExportExcludesIncompleteResponses(t *testing.T) {
	columns := []ExportColumn{{Header: "Q1", Source: "bank", QuestionID: 10}}
	responses := []model.SurveyResponse{
		exportResponse("complete-code-000000", true, []model.ResponseAnswer{textAnswer(10, "Yes")}),
		exportResponse("abandoned-code-00000", false, []model.ResponseAnswer{textAnswer(10, "No")}),
	}

	rows := BuildExport(columns, responses)

	require.Len(t, rows, 2)
	assert.Equal(t, "complete", rows[1][0])
}

func TestBuildExportMatchesCustomQuestionAnswers(t *testing.T) {
	customID := uint(20)
	text := "More communication between shifts"
	columns := []ExportColumn{{Header: "Q3", Source: "custom", QuestionID: customID}}
	responses := []model.SurveyResponse{
		exportResponse("11112222-3333", true, []model.ResponseAnswer{
			{CustomQuestionID: &customID, AnswerText: &text},
		}),
	}

	rows := BuildExport(columns, responses)

	require.Len(t, rows, 2)
	assert.Equal(t, text, rows[1][2])
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Acme_Manufacturing_survey_data.csv", exportFilename("Acme Manufacturing"))
	assert.Equal(t, "Acme__Co_survey_data.csv", exportFilename("Acme & Co."))
	assert.Equal(t, "project_survey_data.csv", exportFilename("!!!"))
}
