package service

import (
	"testing"

	"swingshift_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDistributionCountsAndPercentages(t *testing.T) {
	values := []string{
		"Yes", "Yes", "Yes", "Yes", "Yes", "Yes",
		"No", "No", "No", "No",
	}

	dist, total := BuildDistribution(values)

	assert.Equal(t, 10, total)
	assert.Equal(t, DistributionEntry{Count: 6, Percentage: 60.0}, dist["Yes"])
	assert.Equal(t, DistributionEntry{Count: 4, Percentage: 40.0}, dist["No"])
}

func TestBuildDistributionRoundsToOneDecimal(t *testing.T) {
	dist, total := BuildDistribution([]string{"A", "A", "B"})

	assert.Equal(t, 3, total)
	assert.Equal(t, 66.7, dist["A"].Percentage)
	assert.Equal(t, 33.3, dist["B"].Percentage)
}

func TestBuildDistributionEmptyInput(t *testing.T) {
	dist, total := BuildDistribution(nil)

	assert.Equal(t, 0, total)
	assert.Empty(t, dist)
}

func TestBuildDistributionBucketsEmptyTextAsNoResponse(t *testing.T) {
	dist, total := BuildDistribution([]string{"Yes", "", ""})

	assert.Equal(t, 3, total)
	assert.Equal(t, 2, dist[NoResponseKey].Count)
	assert.Equal(t, 66.7, dist[NoResponseKey].Percentage)
}

func numericAnswer(v float64) model.ResponseAnswer {
	return model.ResponseAnswer{AnswerNumeric: &v}
}

func TestNumericAverage(t *testing.T) {
	answers := []model.ResponseAnswer{
		numericAnswer(3),
		numericAnswer(8),
		{}, // no numeric value, skipped
		numericAnswer(13),
	}

	avg := NumericAverage(answers)

	require.NotNil(t, avg)
	assert.Equal(t, 8.0, *avg)
}

func TestNumericAverageNoNumericAnswers(t *testing.T) {
	assert.Nil(t, NumericAverage(nil))
	assert.Nil(t, NumericAverage([]model.ResponseAnswer{{}}))
}
