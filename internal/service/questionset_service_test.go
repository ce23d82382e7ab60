package service

import (
	"testing"

	"swingshift_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionIDsDropsBadEntriesAndDedups(t *testing.T) {
	raw := []interface{}{float64(5), float64(5), "abc", nil, float64(7)}

	ids, rejected := ParseQuestionIDs(raw)

	assert.Equal(t, []uint{5, 7}, ids)
	assert.Equal(t, []string{"abc", "<nil>"}, rejected)
}

func TestParseQuestionIDsAcceptsNumericStrings(t *testing.T) {
	ids, rejected := ParseQuestionIDs([]interface{}{"12", float64(3), "0", float64(-1), float64(2.5)})

	assert.Equal(t, []uint{12, 3}, ids)
	assert.Len(t, rejected, 3)
}

func pq(id, masterID uint, order int) model.ProjectQuestion {
	q := model.ProjectQuestion{
		ProjectID:        1,
		MasterQuestionID: masterID,
		QuestionOrder:    order,
	}
	q.ID = id
	return q
}

func TestBuildSyncPlanReconcilesSets(t *testing.T) {
	existing := []model.ProjectQuestion{
		pq(10, 1, 1),
		pq(11, 2, 2),
		pq(12, 3, 3),
	}

	plan := BuildSyncPlan(1, existing, []uint{2, 3, 4}, nil, nil, 4)

	assert.Equal(t, []uint{4}, plan.Result.Added)
	assert.Equal(t, []uint{1}, plan.Result.Removed)
	assert.Empty(t, plan.Result.Retained)
	assert.Equal(t, 3, plan.Result.Selected)

	require.Len(t, plan.Adds, 1)
	assert.Equal(t, uint(4), plan.Adds[0].MasterQuestionID)
	assert.Equal(t, 4, plan.Adds[0].QuestionOrder)

	// Retained links keep their rows; only the deselected one is removed.
	assert.Equal(t, []uint{10}, plan.RemoveIDs)
	assert.Contains(t, plan.Updates, uint(11))
	assert.Contains(t, plan.Updates, uint(12))
}

func TestBuildSyncPlanFreshProjectAssignsSequentialOrders(t *testing.T) {
	plan := BuildSyncPlan(1, nil, []uint{5, 7}, nil, nil, 1)

	require.Len(t, plan.Adds, 2)
	assert.Equal(t, uint(5), plan.Adds[0].MasterQuestionID)
	assert.Equal(t, 1, plan.Adds[0].QuestionOrder)
	assert.Equal(t, uint(7), plan.Adds[1].MasterQuestionID)
	assert.Equal(t, 2, plan.Adds[1].QuestionOrder)
	assert.Equal(t, []uint{5, 7}, plan.Result.Added)
}

func TestBuildSyncPlanRetainsAnsweredRemovals(t *testing.T) {
	existing := []model.ProjectQuestion{
		pq(10, 1, 1),
		pq(11, 2, 2),
	}
	answered := map[uint]bool{10: true}

	plan := BuildSyncPlan(1, existing, []uint{2}, nil, answered, 3)

	assert.Equal(t, []uint{1}, plan.Result.Retained)
	assert.Empty(t, plan.Result.Removed)
	// The row id is still submitted for removal; the transaction's answer
	// guard is what keeps it alive.
	assert.Equal(t, []uint{10}, plan.RemoveIDs)
}

func TestBuildSyncPlanAppliesAndClearsOverrides(t *testing.T) {
	existing := []model.ProjectQuestion{
		pq(10, 1, 1),
		pq(11, 2, 2),
	}
	existing[1].CustomOptions = model.OptionOverrideList{{Text: "Old", Code: "o"}}

	overrides := map[uint]model.OptionOverrideList{
		1: {{Text: "Day", Code: "d"}, {Text: "Night", Code: "n"}},
	}

	plan := BuildSyncPlan(1, existing, []uint{1, 2}, overrides, nil, 3)

	assert.Equal(t, []uint{1}, plan.Result.Updated)
	assert.Len(t, plan.Updates[10], 2)
	// No override supplied for question 2 clears the stored one.
	assert.Nil(t, plan.Updates[11])
}

func TestBuildSyncPlanOrdersNeverReused(t *testing.T) {
	// Orders 1-3 were used; 2 was removed earlier. New adds continue at 4.
	existing := []model.ProjectQuestion{
		pq(10, 1, 1),
		pq(12, 3, 3),
	}

	plan := BuildSyncPlan(1, existing, []uint{1, 3, 9}, nil, nil, 4)

	require.Len(t, plan.Adds, 1)
	assert.Equal(t, 4, plan.Adds[0].QuestionOrder)
}

func TestRenderQuestionAppliesOverrides(t *testing.T) {
	low := "Strongly Disagree"
	mq := &model.MasterQuestion{
		QuestionText:   "I like my current schedule.",
		QuestionType:   model.TypeLikert5,
		Category:       "Shift Schedule Features",
		LikertLowLabel: &low,
		ResponseOptions: []model.ResponseOption{
			{OptionText: "1", DisplayOrder: 1},
			{OptionText: "2", DisplayOrder: 2},
		},
	}
	custom := "How do you feel about the proposed schedule?"
	q := pq(10, 1, 1)
	q.MasterQuestion = mq
	q.CustomText = &custom
	q.CustomOptions = model.OptionOverrideList{
		{Text: "Love it", Code: "a"},
		{Text: "Hate it", Code: "b"},
	}

	rendered := RenderQuestion(&q)

	assert.Equal(t, custom, rendered.QuestionText)
	assert.Equal(t, model.TypeLikert5, rendered.QuestionType)
	require.Len(t, rendered.ResponseOptions, 2)
	assert.Equal(t, "Love it", rendered.ResponseOptions[0].OptionText)
	assert.Equal(t, 1, rendered.ResponseOptions[0].DisplayOrder)
	assert.Nil(t, rendered.ResponseOptions[0].NumericValue)
	assert.Equal(t, 2, rendered.ResponseOptions[1].DisplayOrder)
}

func TestRenderQuestionFallsBackToBankDefinition(t *testing.T) {
	val := 1.0
	mq := &model.MasterQuestion{
		QuestionText: "Do you have a second job?",
		QuestionType: model.TypeYesNo,
		Category:     "Demographics",
		ResponseOptions: []model.ResponseOption{
			{OptionText: "Yes", NumericValue: &val, DisplayOrder: 1},
			{OptionText: "No", DisplayOrder: 2},
		},
	}
	q := pq(10, 1, 1)
	q.MasterQuestion = mq

	rendered := RenderQuestion(&q)

	assert.Equal(t, mq.QuestionText, rendered.QuestionText)
	require.Len(t, rendered.ResponseOptions, 2)
	assert.Equal(t, "Yes", rendered.ResponseOptions[0].OptionText)
	assert.Equal(t, &val, rendered.ResponseOptions[0].NumericValue)
}
